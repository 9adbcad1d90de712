package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"repair-assistant/pkg/log"
)

// RequestID reuses the caller's X-Request-ID or mints one, and puts it on the
// request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(KeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.SetRequestID(c.Request.Context(), id))
		c.Next()
	}
}
