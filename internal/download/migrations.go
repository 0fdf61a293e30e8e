package download

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations performs auto-migration for the download schema
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Download{},
		&DailyStat{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate download tables: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates performance indexes beyond what the model tags declare
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_downloads_user_id ON downloads(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_downloads_downloaded_at ON downloads(downloaded_at)",
		"CREATE INDEX IF NOT EXISTS idx_downloads_user_downloaded ON downloads(user_id, downloaded_at)",
		"CREATE INDEX IF NOT EXISTS idx_users_telegram_id ON users(telegram_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
