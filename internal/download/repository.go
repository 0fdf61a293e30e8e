package download

import "time"

// Repository defines data access for users, downloads and daily stats.
// Each method is a single unit of work: it either commits fully or returns
// a RepositoryError with nothing written.
type Repository interface {
	// UpsertUser inserts a user keyed by telegram_id or refreshes
	// username/first_name on re-contact, and returns the stored row with
	// its internal ID populated.
	UpsertUser(telegramID int64, username, firstName string) (*User, error)

	// InsertDownload appends one immutable download row and returns its ID.
	InsertDownload(d *Download) (int64, error)

	// BumpDailyStat increments the counter row for the given calendar day,
	// creating it with both counters at 1 on the first download of the day.
	// Concurrent callers are serialized by the database's upsert semantics.
	BumpDailyStat(date time.Time) error

	// Stats aggregates download activity at or after since.
	Stats(since time.Time) (*StatsReport, error)

	// Downloads returns one page of downloads matching filter plus the
	// total count under the same predicate.
	Downloads(filter DownloadFilter) ([]DownloadRow, int64, error)

	// TopUsers lists all users with their download counts, most active
	// first, capped at 100. Users without downloads are included.
	TopUsers() ([]UserWithCount, error)

	// WithTransaction executes fn within a single database transaction.
	WithTransaction(fn func(Repository) error) error
}
