package events

import "time"

// Topics for download lifecycle events published by the bot service.
const (
	TopicDownloadRecorded = "download.recorded"
	TopicExtractionFailed = "extraction.failed"
)

// DownloadRecorded is published after a download row and its daily stat
// bump have been committed.
type DownloadRecorded struct {
	DownloadID int64
	UserID     int64
	TelegramID int64
	SourceURL  string
	MediaURL   string
	Title      string
	Timestamp  time.Time
}

// ExtractionFailed is published when a link message yields no media.
type ExtractionFailed struct {
	TelegramID int64
	SourceURL  string
	Timestamp  time.Time
}
