package repository

import "errors"

var (
	ErrFailedToGet = errors.New("failed to get cache entry")
	ErrFailedToPut = errors.New("failed to put cache entry")
)
