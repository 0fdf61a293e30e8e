package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinsaver-api/internal/bot"
	"pinsaver-api/pkg/logger"
)

// Mock bot service
type mockBotService struct {
	handleWebhookError error
	received           []byte
}

func (m *mockBotService) HandleWebhook(webhookData []byte) error {
	m.received = webhookData
	return m.handleWebhookError
}

func setupTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestWebhookHandler_HandleTelegramWebhook(t *testing.T) {
	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "successful webhook processing",
			serviceError:   nil,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"ok": true},
		},
		{
			name:           "malformed update returns 400",
			serviceError:   fmt.Errorf("decode update: %w", bot.ErrMalformedUpdate),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "malformed update"},
		},
		{
			name:           "processing failure returns 500",
			serviceError:   errors.New("database unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "database unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockBotService{handleWebhookError: tt.serviceError}
			handler := NewWebhookHandler(service, logger.New())

			router := setupTest()
			router.POST("/webhook", handler.HandleTelegramWebhook)

			body := []byte(`{"update_id": 1}`)
			req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestWebhookHandler_PassesRawBodyThrough(t *testing.T) {
	service := &mockBotService{}
	handler := NewWebhookHandler(service, logger.New())

	router := setupTest()
	router.POST("/webhook", handler.HandleTelegramWebhook)

	body := []byte(`{"update_id": 42, "message": {"text": "hi"}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, service.received, "handler must not re-encode the update")
}
