package repository

import "errors"

var (
	ErrFailedToIncrement = errors.New("failed to increment usage")
	ErrFailedToGet       = errors.New("failed to get usage")
)
