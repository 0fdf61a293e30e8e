package download

import (
	"strings"
	"sync"
	"time"
)

// MockRepository provides an in-memory Repository implementation for testing
type MockRepository struct {
	mu         sync.Mutex
	users      map[int64]*User // keyed by telegram_id
	downloads  []*Download
	dailyStats map[string]*DailyStat
	nextUserID int64
	nextDLID   int64

	UpsertErr error
	InsertErr error
	BumpErr   error
	QueryErr  error
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:      make(map[int64]*User),
		dailyStats: make(map[string]*DailyStat),
		nextUserID: 1,
		nextDLID:   1,
	}
}

func (m *MockRepository) UpsertUser(telegramID int64, username, firstName string) (*User, error) {
	if m.UpsertErr != nil {
		return nil, m.UpsertErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.users[telegramID]; ok {
		existing.Username = username
		existing.FirstName = firstName
		copied := *existing
		return &copied, nil
	}

	user := &User{
		ID:         m.nextUserID,
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		CreatedAt:  time.Now(),
	}
	m.nextUserID++
	m.users[telegramID] = user
	copied := *user
	return &copied, nil
}

func (m *MockRepository) InsertDownload(d *Download) (int64, error) {
	if m.InsertErr != nil {
		return 0, m.InsertErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	d.ID = m.nextDLID
	m.nextDLID++
	if d.DownloadedAt.IsZero() {
		d.DownloadedAt = time.Now()
	}
	copied := *d
	m.downloads = append(m.downloads, &copied)
	return d.ID, nil
}

func (m *MockRepository) BumpDailyStat(date time.Time) error {
	if m.BumpErr != nil {
		return m.BumpErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := date.UTC().Format("2006-01-02")
	if stat, ok := m.dailyStats[key]; ok {
		stat.TotalDownloads++
		return nil
	}
	m.dailyStats[key] = &DailyStat{
		Date:           date,
		TotalDownloads: 1,
		UniqueUsers:    1,
	}
	return nil
}

func (m *MockRepository) Stats(since time.Time) (*StatsReport, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	report := &StatsReport{DailyStats: []DailyCount{}, TopVideos: []TitleCount{}}
	seen := make(map[int64]bool)
	for _, d := range m.downloads {
		if d.DownloadedAt.Before(since) {
			continue
		}
		report.TotalDownloads++
		seen[d.UserID] = true
		if d.FileSize != nil {
			report.TotalSize += *d.FileSize
		}
	}
	report.UniqueUsers = int64(len(seen))
	return report, nil
}

func (m *MockRepository) Downloads(filter DownloadFilter) ([]DownloadRow, int64, error) {
	if m.QueryErr != nil {
		return nil, 0, m.QueryErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*Download{}
	for _, d := range m.downloads {
		if !matchesFilter(d, filter) {
			continue
		}
		matched = append(matched, d)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	page := matched[offset:]
	if len(page) > limit {
		page = page[:limit]
	}

	rows := []DownloadRow{}
	for _, d := range page {
		rows = append(rows, DownloadRow{
			ID:           d.ID,
			SourceURL:    d.SourceURL,
			MediaURL:     d.MediaURL,
			ThumbnailURL: d.ThumbnailURL,
			Title:        d.Title,
			FileSize:     d.FileSize,
			DownloadedAt: d.DownloadedAt,
		})
	}
	return rows, int64(len(matched)), nil
}

// matchesFilter mirrors the SQL predicate: case-insensitive search over title
// and source URL, inclusive date bounds.
func matchesFilter(d *Download, filter DownloadFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		title := ""
		if d.Title != nil {
			title = strings.ToLower(*d.Title)
		}
		if !strings.Contains(title, needle) &&
			!strings.Contains(strings.ToLower(d.SourceURL), needle) {
			return false
		}
	}
	if filter.DateFrom != nil && d.DownloadedAt.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && d.DownloadedAt.After(*filter.DateTo) {
		return false
	}
	return true
}

func (m *MockRepository) TopUsers() ([]UserWithCount, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	users := []UserWithCount{}
	for _, u := range m.users {
		count := int64(0)
		for _, d := range m.downloads {
			if d.UserID == u.ID {
				count++
			}
		}
		users = append(users, UserWithCount{
			ID:             u.ID,
			TelegramID:     u.TelegramID,
			Username:       u.Username,
			FirstName:      u.FirstName,
			IsAdmin:        u.IsAdmin,
			CreatedAt:      u.CreatedAt,
			DownloadsCount: count,
		})
	}
	return users, nil
}

func (m *MockRepository) WithTransaction(fn func(Repository) error) error {
	return fn(m)
}

// Downloads recorded so far, for test assertions.
func (m *MockRepository) AllDownloads() []*Download {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Download, len(m.downloads))
	copy(out, m.downloads)
	return out
}

// DailyStatFor returns the stat row for a calendar day, or nil.
func (m *MockRepository) DailyStatFor(date time.Time) *DailyStat {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stat, ok := m.dailyStats[date.UTC().Format("2006-01-02")]; ok {
		copied := *stat
		return &copied
	}
	return nil
}

// UserFor returns the stored user for a telegram ID, or nil.
func (m *MockRepository) UserFor(telegramID int64) *User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[telegramID]; ok {
		copied := *u
		return &copied
	}
	return nil
}
