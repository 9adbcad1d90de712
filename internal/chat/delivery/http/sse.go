package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"repair-assistant/internal/chat"
)

// sseEmitter writes events as `data: {json}` frames. Headers go out with the
// first event so that errors raised before it can still be answered as JSON.
type sseEmitter struct {
	c       *gin.Context
	started bool
}

var _ chat.Emitter = (*sseEmitter)(nil)

func newSSEEmitter(c *gin.Context) *sseEmitter {
	return &sseEmitter{c: c}
}

func (e *sseEmitter) Emit(ctx context.Context, ev chat.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.started {
		h := e.c.Writer.Header()
		h.Set("Content-Type", sse.ContentType)
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		e.c.Status(http.StatusOK)
		e.started = true
	}
	if err := sse.Encode(e.c.Writer, sse.Event{Data: ev}); err != nil {
		return err
	}
	e.c.Writer.Flush()
	return nil
}
