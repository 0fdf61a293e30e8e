package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pinsaver-api/internal/admin"
	"pinsaver-api/internal/download"
	"pinsaver-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin query API: one endpoint dispatching on a
// report selector.
type AdminHandler struct {
	adminService admin.Service
	logger       *logger.Logger
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(adminService admin.Service, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Query dispatches on the endpoint parameter to one of the three reports.
// An unrecognized selector falls back to the statistics report.
func (h *AdminHandler) Query(c *gin.Context) {
	switch c.Query("endpoint") {
	case "downloads":
		h.downloads(c)
	case "users":
		h.users(c)
	default:
		h.statistics(c)
	}
}

func (h *AdminHandler) statistics(c *gin.Context) {
	period, _ := strconv.Atoi(c.DefaultQuery("period", strconv.Itoa(admin.DefaultPeriodDays)))

	report, err := h.adminService.Statistics(period)
	if err != nil {
		h.fail(c, "statistics", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) downloads(c *gin.Context) {
	filter := download.DownloadFilter{
		Search: c.Query("search"),
	}
	if from, ok := parseDate(c.Query("date_from")); ok {
		filter.DateFrom = &from
	}
	if to, ok := parseDate(c.Query("date_to")); ok {
		filter.DateTo = &to
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(admin.DefaultLimit)))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	report, err := h.adminService.Downloads(filter)
	if err != nil {
		h.fail(c, "downloads", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) users(c *gin.Context) {
	report, err := h.adminService.TopUsers()
	if err != nil {
		h.fail(c, "users", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) fail(c *gin.Context, report string, err error) {
	h.logger.Error("Admin report failed", "report", report, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// parseDate accepts a calendar day or a full timestamp.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
