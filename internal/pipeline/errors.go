package pipeline

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid pipeline transition")
)
