//go:build integration

package download_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"pinsaver-api/internal/config"
	"pinsaver-api/internal/database"
	"pinsaver-api/internal/download"
)

// setupPostgres starts a throwaway PostgreSQL container, connects with the
// production connection code (schema included) and runs the migrations.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("pinsaver_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "test_user",
		Password:        "test_password",
		DBName:          "pinsaver_test",
		Schema:          "pinsaver",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 300,
	}

	db, err := database.NewPostgresConnection(cfg)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, download.RunMigrations(db))
	return db
}

func TestPostgresRepository_FullDownloadFlow(t *testing.T) {
	db := setupPostgres(t)
	repo := download.NewGormRepository(db, zaptest.NewLogger(t))

	user, err := repo.UpsertUser(42, "alice", "Alice")
	require.NoError(t, err)

	// tables must live in the configured schema, not public
	var count int64
	err = db.Raw("SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'pinsaver' AND table_name = 'downloads'").Scan(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	title := "Cat video"
	now := time.Now().UTC()
	err = repo.WithTransaction(func(tx download.Repository) error {
		if _, err := tx.InsertDownload(&download.Download{
			UserID:       user.ID,
			SourceURL:    "https://pinterest.com/pin/1/",
			MediaURL:     "https://v1.pinimg.com/videos/clip.mp4",
			ThumbnailURL: "https://i.pinimg.com/thumb.jpg",
			Title:        &title,
			DownloadedAt: now,
		}); err != nil {
			return err
		}
		return tx.BumpDailyStat(now)
	})
	require.NoError(t, err)

	report, err := repo.Stats(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalDownloads)
	assert.Equal(t, int64(1), report.UniqueUsers)
	require.Len(t, report.DailyStats, 1)
	assert.Equal(t, now.Format("2006-01-02"), report.DailyStats[0].Date)
	require.Len(t, report.TopVideos, 1)
	assert.Equal(t, "Cat video", report.TopVideos[0].Title)

	rows, total, err := repo.Downloads(download.DownloadFilter{Search: "cat"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)

	users, err := repo.TopUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), users[0].DownloadsCount)
}

func TestPostgresRepository_ConcurrentDailyBumps(t *testing.T) {
	db := setupPostgres(t)
	repo := download.NewGormRepository(db, zaptest.NewLogger(t))

	day := time.Now().UTC()
	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			done <- repo.BumpDailyStat(day)
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	var stat download.DailyStat
	require.NoError(t, db.First(&stat).Error)
	assert.Equal(t, int64(10), stat.TotalDownloads, "concurrent bumps must not lose increments")
}
