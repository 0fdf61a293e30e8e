package download

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormRepository implements the Repository interface using GORM
type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormRepository creates a new GORM-based download repository
func NewGormRepository(db *gorm.DB, logger *zap.Logger) Repository {
	return &gormRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser inserts or refreshes a user keyed by telegram_id. Both username
// and first_name are refreshed on re-contact.
func (r *gormRepository) UpsertUser(telegramID int64, username, firstName string) (*User, error) {
	r.logger.Debug("Upserting user", zap.Int64("telegram_id", telegramID))

	var stored User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user := User{
			TelegramID: telegramID,
			Username:   username,
			FirstName:  firstName,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "telegram_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "first_name"}),
		}).Create(&user).Error; err != nil {
			return err
		}

		// The conflict path leaves the surrogate ID unset, so re-read the row.
		return tx.Where("telegram_id = ?", telegramID).First(&stored).Error
	})
	if err != nil {
		return nil, WrapRepositoryError(err, "upsert user")
	}

	return &stored, nil
}

// InsertDownload appends one download row and returns its ID.
func (r *gormRepository) InsertDownload(d *Download) (int64, error) {
	r.logger.Debug("Inserting download",
		zap.Int64("user_id", d.UserID),
		zap.String("source_url", d.SourceURL))

	if err := r.db.Create(d).Error; err != nil {
		return 0, WrapRepositoryError(err, "insert download")
	}

	r.logger.Info("Download recorded",
		zap.Int64("download_id", d.ID),
		zap.Int64("user_id", d.UserID))
	return d.ID, nil
}

// BumpDailyStat upserts the counter row for the given day. The increment is
// pushed into the ON CONFLICT clause so concurrent callers cannot lose
// updates.
func (r *gormRepository) BumpDailyStat(date time.Time) error {
	day := truncateToDay(date)

	stat := DailyStat{
		Date:           day,
		TotalDownloads: 1,
		UniqueUsers:    1,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_downloads": gorm.Expr("daily_stats.total_downloads + 1"),
		}),
	}).Create(&stat).Error
	if err != nil {
		return WrapRepositoryError(err, "bump daily stat")
	}

	return nil
}

// Stats aggregates download activity at or after since.
func (r *gormRepository) Stats(since time.Time) (*StatsReport, error) {
	r.logger.Debug("Building stats report", zap.Time("since", since))

	// Scanned into a flat struct; the report's slice fields would otherwise
	// be taken for gorm relations.
	var totals struct {
		TotalDownloads int64
		UniqueUsers    int64
		TotalSize      int64
	}
	err := r.db.Model(&Download{}).
		Select("COUNT(*) AS total_downloads, COUNT(DISTINCT user_id) AS unique_users, COALESCE(SUM(file_size), 0) AS total_size").
		Where("downloaded_at >= ?", since).
		Scan(&totals).Error
	if err != nil {
		return nil, WrapRepositoryError(err, "stats totals")
	}

	report := &StatsReport{
		TotalDownloads: totals.TotalDownloads,
		UniqueUsers:    totals.UniqueUsers,
		TotalSize:      totals.TotalSize,
		DailyStats:     []DailyCount{},
		TopVideos:      []TitleCount{},
	}

	// DATE() yields a date in Postgres and a YYYY-MM-DD string in SQLite;
	// both scan into a string that starts with the calendar day.
	var days []struct {
		Day   string
		Count int64
	}
	err = r.db.Model(&Download{}).
		Select("DATE(downloaded_at) AS day, COUNT(*) AS count").
		Where("downloaded_at >= ?", since).
		Group("DATE(downloaded_at)").
		Order("day DESC").
		Scan(&days).Error
	if err != nil {
		return nil, WrapRepositoryError(err, "stats daily series")
	}
	for _, d := range days {
		report.DailyStats = append(report.DailyStats, DailyCount{
			Date:  calendarDay(d.Day),
			Count: d.Count,
		})
	}

	err = r.db.Model(&Download{}).
		Select("title, COUNT(*) AS count").
		Where("downloaded_at >= ? AND title IS NOT NULL", since).
		Group("title").
		Order("count DESC").
		Limit(10).
		Scan(&report.TopVideos).Error
	if err != nil {
		return nil, WrapRepositoryError(err, "stats top titles")
	}

	return report, nil
}

// Downloads returns one page of matching downloads and the total count under
// the same predicate.
func (r *gormRepository) Downloads(filter DownloadFilter) ([]DownloadRow, int64, error) {
	r.logger.Debug("Listing downloads",
		zap.String("search", filter.Search),
		zap.Int("limit", filter.Limit),
		zap.Int("offset", filter.Offset))

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	rows := []DownloadRow{}
	err := r.filtered(filter).
		Select("downloads.id, downloads.source_url, downloads.media_url, downloads.thumbnail_url, downloads.title, downloads.file_size, downloads.downloaded_at, users.username, users.first_name").
		Joins("LEFT JOIN users ON users.id = downloads.user_id").
		Order("downloads.downloaded_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, WrapRepositoryError(err, "list downloads")
	}

	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, WrapRepositoryError(err, "count downloads")
	}

	return rows, total, nil
}

// filtered applies the listing predicate; the page and count queries share it.
func (r *gormRepository) filtered(filter DownloadFilter) *gorm.DB {
	q := r.db.Model(&Download{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("(LOWER(downloads.title) LIKE ? OR LOWER(downloads.source_url) LIKE ?)", pattern, pattern)
	}
	if filter.DateFrom != nil {
		q = q.Where("downloads.downloaded_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("downloads.downloaded_at <= ?", *filter.DateTo)
	}
	return q
}

// TopUsers lists every user with their download count, most active first.
func (r *gormRepository) TopUsers() ([]UserWithCount, error) {
	r.logger.Debug("Listing top users")

	users := []UserWithCount{}
	err := r.db.Model(&User{}).
		Select("users.id, users.telegram_id, users.username, users.first_name, users.is_admin, users.created_at, COUNT(downloads.id) AS downloads_count").
		Joins("LEFT JOIN downloads ON downloads.user_id = users.id").
		Group("users.id").
		Order("downloads_count DESC").
		Limit(100).
		Scan(&users).Error
	if err != nil {
		return nil, WrapRepositoryError(err, "top users")
	}

	return users, nil
}

// WithTransaction executes fn within a database transaction
func (r *gormRepository) WithTransaction(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &gormRepository{
			db:     tx,
			logger: r.logger,
		}
		return fn(txRepo)
	})
}

// truncateToDay normalizes a timestamp to midnight UTC so upserts for the
// same calendar day always hit the same row.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDay trims a scanned day value to YYYY-MM-DD.
func calendarDay(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
