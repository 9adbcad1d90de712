package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"repair-assistant/internal/repair/repository"
)

func (r *implRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: key=%s: %v", r.dsn("Get"), key, err)
		return nil, false, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return val, true, nil
}

// Put upserts without expiry; last writer wins.
func (r *implRepository) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		r.l.Errorf(ctx, "%s: key=%s: %v", r.dsn("Put"), key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPut, err)
	}
	return nil
}
