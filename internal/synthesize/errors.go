package synthesize

import "errors"

var (
	ErrSynthesisFailed = errors.New("synthesis failed")
	ErrEmptyAnswer     = errors.New("generator returned an empty answer")
)
