package repository

import "context"

// CacheRepository is the key/value store behind strategy memoization.
// Entries are created on first successful fetch, replaced on refresh and
// never deleted here.
type CacheRepository interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}
