package http

import (
	"github.com/gin-gonic/gin"
)

// processStreamReq binds and validates the chat request body.
func (h *handler) processStreamReq(c *gin.Context) (streamReq, error) {
	var req streamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
