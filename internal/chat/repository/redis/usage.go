package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"repair-assistant/internal/chat/repository"
)

func (r *implRepository) IncrementUsage(ctx context.Context, userID string, amount int64) error {
	if err := r.client.IncrBy(ctx, keyPrefix+userID, amount).Err(); err != nil {
		r.l.Errorf(ctx, "%s: user=%s amount=%d: %v", r.dsn("IncrementUsage"), userID, amount, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToIncrement, err)
	}
	return nil
}

func (r *implRepository) GetUsage(ctx context.Context, userID string) (int64, error) {
	used, err := r.client.Get(ctx, keyPrefix+userID).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: user=%s: %v", r.dsn("GetUsage"), userID, err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return used, nil
}
