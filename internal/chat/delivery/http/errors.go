package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"repair-assistant/internal/chat"
	"repair-assistant/pkg/response"
)

// respondError writes the HTTP error for a use-case failure that happened
// before the event stream started.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	case errors.Is(err, chat.ErrMissingUser):
		response.Unauthorized(c)
	case errors.Is(err, chat.ErrQuotaExceeded):
		response.TooManyRequests(c, err)
	default:
		response.InternalError(c, err)
	}
}
