package handlers

import (
	"errors"
	"io"
	"net/http"

	"pinsaver-api/internal/bot"
	"pinsaver-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles Telegram webhook requests
type WebhookHandler struct {
	botService bot.Service
	logger     *logger.Logger
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(botService bot.Service, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		botService: botService,
		logger:     logger,
	}
}

// HandleTelegramWebhook processes one incoming Telegram update. Every
// well-formed update is acknowledged with 200 {"ok": true}; an undecodable
// body is the caller's fault (400) and processing failures surface as 500.
func (h *WebhookHandler) HandleTelegramWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read webhook body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	if err := h.botService.HandleWebhook(body); err != nil {
		if errors.Is(err, bot.ErrMalformedUpdate) {
			h.logger.Warn("Malformed webhook update",
				"error", err,
				"body_size", len(body))
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed update"})
			return
		}

		h.logger.Error("Failed to process webhook",
			"error", err,
			"body_size", len(body))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
