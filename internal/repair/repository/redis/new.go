package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"repair-assistant/internal/repair/repository"
	"repair-assistant/pkg/log"
)

const keyPrefix = "repair:cache:"

type implRepository struct {
	client goredis.UniversalClient
	l      log.Logger
}

// New creates a Redis-backed CacheRepository.
func New(client goredis.UniversalClient, l log.Logger) repository.CacheRepository {
	if client == nil {
		panic("repair/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("repair/repository/redis.%s", method)
}
