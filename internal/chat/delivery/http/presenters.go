package http

import (
	"strings"

	"repair-assistant/internal/chat"
)

// --- Request DTOs ---

type streamReq struct {
	Message  string `json:"message"   binding:"required,max=2000"`
	ThreadID string `json:"thread_id" binding:"max=128"`
	Refresh  bool   `json:"refresh"`
}

func (r streamReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r streamReq) toInput(userID string) chat.StreamInput {
	threadID := r.ThreadID
	if threadID == "" {
		threadID = "user_" + userID
	}
	return chat.StreamInput{
		UserID:   userID,
		ThreadID: threadID,
		Message:  strings.TrimSpace(r.Message),
		Refresh:  r.Refresh,
	}
}

// --- Response DTOs ---

type usageResp struct {
	UserID     string `json:"user_id"`
	TokensUsed int64  `json:"tokens_used"`
	TokenLimit int64  `json:"token_limit"`
}

func (h *handler) newUsageResp(out chat.UsageOutput) usageResp {
	return usageResp{
		UserID:     out.UserID,
		TokensUsed: out.TokensUsed,
		TokenLimit: out.TokenLimit,
	}
}
