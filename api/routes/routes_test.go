package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pinsaver-api/internal/admin"
	"pinsaver-api/internal/bot"
	"pinsaver-api/internal/common"
	"pinsaver-api/internal/config"
	"pinsaver-api/internal/download"
	"pinsaver-api/pkg/logger"
)

type noopBotService struct{}

func (noopBotService) HandleWebhook([]byte) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, download.RunMigrations(db))

	log := logger.New()
	cfg := &config.Config{Admin: config.AdminConfig{TelegramID: "123456"}}
	repo := download.NewGormRepository(db, log.Desugar())
	adminService := admin.NewService(repo, common.NewRealClock(), log.Desugar())

	router := gin.New()
	SetupRoutes(router, db, cfg, log, noopBotService{}, adminService)
	return router
}

var _ bot.Service = noopBotService{}

func do(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_HealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/v1/health", nil).Code)
}

func TestSetupRoutes_WebhookAcceptsPostOnly(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/api/v1/telegram/webhook", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(router, http.MethodGet, "/api/v1/telegram/webhook", nil).Code)
}

func TestSetupRoutes_AdminRequiresIdentity(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusForbidden, do(router, http.MethodGet, "/api/v1/admin", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(router, http.MethodGet, "/api/v1/admin",
		map[string]string{"X-Admin-Id": "999"}).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/v1/admin",
		map[string]string{"X-Admin-Id": "123456"}).Code)
}

func TestSetupRoutes_PreflightOnAdmin(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodOptions, "/api/v1/admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/unknown", nil).Code)
}
