package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "repair-assistant/internal/chat/delivery/http"
	"repair-assistant/internal/middleware"
)

// setupChatDomain registers /api/v1/chat/stream and /api/v1/usage.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
