package http

import (
	"github.com/gin-gonic/gin"

	"repair-assistant/internal/middleware"
)

// RegisterRoutes maps chat endpoints. Every route needs a caller identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat/stream", mw.UserScope(), mw.RateLimit(), h.Stream)
	rg.GET("/usage", mw.UserScope(), h.Usage)
}
