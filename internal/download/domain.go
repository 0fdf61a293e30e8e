package download

import "time"

// User represents a Telegram user known to the bot. The row is created or
// refreshed on every inbound message, keyed by the immutable TelegramID.
type User struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TelegramID int64     `json:"telegram_id" gorm:"uniqueIndex;not null"`
	Username   string    `json:"username" gorm:"type:varchar(255)"`
	FirstName  string    `json:"first_name" gorm:"type:varchar(255)"`
	IsAdmin    bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Download is one successfully extracted video. Rows are immutable once
// written and never deleted by the service.
type Download struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       int64     `json:"user_id" gorm:"not null;index"`
	SourceURL    string    `json:"source_url" gorm:"type:text;not null"`
	MediaURL     string    `json:"media_url" gorm:"type:text;not null"`
	ThumbnailURL string    `json:"thumbnail_url" gorm:"type:text"`
	Title        *string   `json:"title" gorm:"type:varchar(512)"`
	FileSize     *int64    `json:"file_size"`
	DownloadedAt time.Time `json:"downloaded_at" gorm:"autoCreateTime;index"`
}

// DailyStat is a per-day download counter maintained by atomic upsert.
// UniqueUsers is written once at row creation and never recomputed; the
// authoritative distinct-user count comes from the downloads table (see
// Stats).
type DailyStat struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Date           time.Time `json:"date" gorm:"type:date;uniqueIndex;not null"`
	TotalDownloads int64     `json:"total_downloads" gorm:"not null;default:0"`
	UniqueUsers    int64     `json:"unique_users" gorm:"not null;default:0"`
}

// DownloadFilter narrows the downloads listing. Zero values mean "no
// constraint"; Search matches title or source URL case-insensitively.
type DownloadFilter struct {
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// DownloadRow is a download joined with its owning user for reporting.
type DownloadRow struct {
	ID           int64     `json:"id"`
	SourceURL    string    `json:"source_url"`
	MediaURL     string    `json:"media_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        *string   `json:"title"`
	FileSize     *int64    `json:"file_size"`
	DownloadedAt time.Time `json:"downloaded_at"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
}

// DailyCount is one entry of the per-day download series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TitleCount is one entry of the most-downloaded-titles leaderboard.
type TitleCount struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// StatsReport aggregates download activity since a given date.
type StatsReport struct {
	TotalDownloads int64        `json:"total_downloads"`
	UniqueUsers    int64        `json:"unique_users"`
	TotalSize      int64        `json:"total_size"`
	DailyStats     []DailyCount `json:"daily_stats"`
	TopVideos      []TitleCount `json:"top_videos"`
}

// UserWithCount is a user together with their lifetime download count.
type UserWithCount struct {
	ID             int64     `json:"id"`
	TelegramID     int64     `json:"telegram_id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	DownloadsCount int64     `json:"downloads_count"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// TableName returns the table name for the Download model
func (Download) TableName() string {
	return "downloads"
}

// TableName returns the table name for the DailyStat model
func (DailyStat) TableName() string {
	return "daily_stats"
}
