package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"repair-assistant/internal/repair/repository"
	"repair-assistant/pkg/log"
)

const (
	defaultSize = 1000
	defaultTTL  = 10 * time.Minute
)

// Options configures the in-process tier.
type Options struct {
	Size int
	TTL  time.Duration
}

type implRepository struct {
	local *expirable.LRU[string, []byte]
	next  repository.CacheRepository
	l     log.Logger
}

// New creates an in-process LRU tier in front of next.
// With a nil next the tier is the only store (used in tests and local runs).
func New(next repository.CacheRepository, opt Options, l log.Logger) repository.CacheRepository {
	if opt.Size <= 0 {
		opt.Size = defaultSize
	}
	if opt.TTL <= 0 {
		opt.TTL = defaultTTL
	}
	ttl := opt.TTL
	if next == nil {
		// Sole store: entries must not expire.
		ttl = 0
	}
	return &implRepository{
		local: expirable.NewLRU[string, []byte](opt.Size, nil, ttl),
		next:  next,
		l:     l,
	}
}
