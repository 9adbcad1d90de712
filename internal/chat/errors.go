package chat

import "errors"

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrMissingUser    = errors.New("user is required")
	ErrQuotaExceeded  = errors.New("token quota exceeded")
	ErrClientGone     = errors.New("client disconnected")
	ErrPipelineFailed = errors.New("pipeline failed")
)
