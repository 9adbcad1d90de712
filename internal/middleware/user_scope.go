package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"repair-assistant/pkg/log"
	"repair-assistant/pkg/response"
)

// UserScope reads the caller identity set by the upstream gateway.
// Requests without one are rejected with 401.
func (m Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.UserScope: missing %s header", HeaderUserID)
			response.Unauthorized(c)
			return
		}

		c.Set(KeyUserID, userID)
		c.Request = c.Request.WithContext(log.SetUserID(c.Request.Context(), userID))
		c.Next()
	}
}
