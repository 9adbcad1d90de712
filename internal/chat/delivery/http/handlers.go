package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"repair-assistant/internal/chat"
	"repair-assistant/pkg/log"
	"repair-assistant/pkg/response"
)

// Stream godoc
// @Summary     Ask a repair question
// @Description Runs the repair pipeline and streams the answer as server-sent events.
// @Description Each frame is `data: {"type": ...}` with type diagnostic, token, step_end, final, error or end.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       X-User-ID header string    true "Caller identity"
// @Param       body      body   streamReq true "Question"
// @Success     200 {object} chat.Event
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Rate limit or token quota exceeded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/stream [POST]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStreamReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	em := newSSEEmitter(c)
	err = h.uc.Stream(ctx, req.toInput(log.GetUserID(ctx)), em)
	if err == nil {
		return
	}
	if errors.Is(err, chat.ErrClientGone) {
		h.l.Infof(ctx, "uc.Stream: %v", err)
		return
	}
	if em.started {
		// The stream already carries the outcome; nothing more can be written.
		h.l.Errorf(ctx, "uc.Stream: %v", err)
		return
	}

	h.l.Warnf(ctx, "uc.Stream: %v", err)
	h.respondError(c, err)
}

// Usage godoc
// @Summary     Token usage
// @Description Returns tokens consumed by the caller and the configured limit (0 means unlimited).
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Success     200 {object} usageResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/usage [GET]
func (h *handler) Usage(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GetUsage(ctx, log.GetUserID(ctx))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetUsage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUsageResp(out))
}
