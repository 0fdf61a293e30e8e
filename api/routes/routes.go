package routes

import (
	"pinsaver-api/api/handlers"
	"pinsaver-api/api/middleware"
	"pinsaver-api/internal/admin"
	"pinsaver-api/internal/bot"
	"pinsaver-api/internal/config"
	"pinsaver-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, logger *logger.Logger, botService bot.Service, adminService admin.Service) {
	// Answer wrong-method calls with 405 instead of 404
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(middleware.RequestLogging(logger))
	router.Use(middleware.CORS())
	router.Use(gin.Recovery())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, logger)
	webhookHandler := handlers.NewWebhookHandler(botService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	// Setup routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Check)

		// Telegram webhook endpoint
		v1.POST("/telegram/webhook", webhookHandler.HandleTelegramWebhook)

		// Admin query API behind the trusted-identity check
		v1.GET("/admin", middleware.AdminAuth(cfg.Admin), adminHandler.Query)
	}

	// Root health check
	router.GET("/health", healthHandler.Check)
}
