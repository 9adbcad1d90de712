package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"repair-assistant/internal/chat/repository"
	"repair-assistant/pkg/log"
)

const keyPrefix = "usage:"

type implRepository struct {
	client goredis.UniversalClient
	l      log.Logger
}

// New creates a Redis-backed UsageRepository.
func New(client goredis.UniversalClient, l log.Logger) repository.UsageRepository {
	if client == nil {
		panic("chat/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/redis.%s", method)
}
