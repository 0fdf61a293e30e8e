package middleware

import (
	"crypto/subtle"
	"net/http"

	"pinsaver-api/internal/config"

	"github.com/gin-gonic/gin"
)

// AdminAuth compares the X-Admin-Id header against the configured trusted
// identity. Missing and wrong credentials get the same uniform 403.
func AdminAuth(cfg config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetHeader("X-Admin-Id")

		if cfg.TelegramID == "" ||
			subtle.ConstantTimeCompare([]byte(callerID), []byte(cfg.TelegramID)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
