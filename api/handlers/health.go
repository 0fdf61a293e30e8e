package handlers

import (
	"net/http"

	"pinsaver-api/internal/database"
	"pinsaver-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *gorm.DB, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Check returns 200 when the database answers a ping, 503 otherwise
func (h *HealthHandler) Check(c *gin.Context) {
	if err := database.HealthCheck(h.db); err != nil {
		h.logger.Error("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
