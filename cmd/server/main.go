package main

import (
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pinsaver-api/api/routes"
	"pinsaver-api/internal/admin"
	"pinsaver-api/internal/bot"
	"pinsaver-api/internal/common"
	"pinsaver-api/internal/config"
	"pinsaver-api/internal/database"
	"pinsaver-api/internal/download"
	"pinsaver-api/internal/events"
	"pinsaver-api/internal/extractor"
	"pinsaver-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger := logger.New()
	defer logger.Sync()

	// Get the underlying zap logger for services
	zapLogger := logger.SugaredLogger.Desugar()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	// Run schema migrations
	if err := download.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Initialize event bus and subscribe the audit log
	eventBus := events.NewEventBus(zapLogger)
	subscribeAuditLog(eventBus, zapLogger)

	// Initialize services
	clock := common.NewRealClock()
	repo := download.NewGormRepository(db, zapLogger)
	pinExtractor := extractor.New(cfg.Extractor, zapLogger)

	provider, err := bot.NewTelegramProvider(cfg.Bot, zapLogger)
	if err != nil {
		logger.Fatal("Failed to initialize telegram provider", "error", err)
	}
	if cfg.Bot.WebhookURL != "" {
		if err := provider.SetWebhook(cfg.Bot.WebhookURL); err != nil {
			logger.Warn("Failed to set webhook", "error", err)
		}
	}

	botService := bot.NewService(provider, pinExtractor, repo, eventBus, clock, zapLogger)
	adminService := admin.NewService(repo, clock, zapLogger)

	// Setup Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	routes.SetupRoutes(router, db, cfg, logger, botService, adminService)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if err := eventBus.Close(); err != nil {
		logger.Error("Failed to close event bus", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

// subscribeAuditLog records download lifecycle events for operators.
func subscribeAuditLog(bus events.EventBus, zapLogger *zap.Logger) {
	if err := bus.Subscribe(events.TopicDownloadRecorded, func(e events.DownloadRecorded) {
		zapLogger.Info("Download recorded",
			zap.Int64("download_id", e.DownloadID),
			zap.Int64("telegram_id", e.TelegramID),
			zap.String("title", e.Title))
	}); err != nil {
		zapLogger.Error("Failed to subscribe audit log", zap.Error(err))
	}

	if err := bus.Subscribe(events.TopicExtractionFailed, func(e events.ExtractionFailed) {
		zapLogger.Info("Extraction failed",
			zap.Int64("telegram_id", e.TelegramID),
			zap.String("source_url", e.SourceURL))
	}); err != nil {
		zapLogger.Error("Failed to subscribe audit log", zap.Error(err))
	}
}
