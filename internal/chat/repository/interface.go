package repository

import "context"

// UsageRepository keeps a monotonic per-user token counter.
type UsageRepository interface {
	IncrementUsage(ctx context.Context, userID string, amount int64) error
	GetUsage(ctx context.Context, userID string) (int64, error)
}
