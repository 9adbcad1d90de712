package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"repair-assistant/internal/repair/repository"
	"repair-assistant/pkg/log"
	"repair-assistant/pkg/metrics"
)

// resolver memoizes one strategy's provider lookups.
// Only non-empty successes are written; failures never reach the cache.
type resolver[T any] struct {
	name    string
	cache   repository.CacheRepository
	timeout time.Duration
	empty   func(*T) bool
	group   singleflight.Group
	l       log.Logger
}

func newResolver[T any](name string, cache repository.CacheRepository, timeout time.Duration, empty func(*T) bool, l log.Logger) *resolver[T] {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &resolver[T]{
		name:    name,
		cache:   cache,
		timeout: timeout,
		empty:   empty,
		l:       l,
	}
}

// resolve returns the cached value for query or calls fetch on a miss.
// With refresh set the cache read is skipped and a success replaces the entry.
func (r *resolver[T]) resolve(ctx context.Context, query string, refresh bool, fetch func(context.Context) (*T, error)) *T {
	key := CacheKey(r.name, NormalizeQuery(query))

	if !refresh {
		if v, ok := r.lookup(ctx, key); ok {
			return v
		}
	}

	ch := r.group.DoChan(key, func() (any, error) {
		// Shared by every waiter on key, so one caller's cancellation must not abort it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()

		res, err := fetch(fetchCtx)
		if err != nil {
			reason := metrics.ReasonError
			if errors.Is(err, context.DeadlineExceeded) {
				reason = metrics.ReasonTimeout
			}
			metrics.StrategyFailuresTotal.WithLabelValues(r.name, reason).Inc()
			r.l.Warnf(ctx, "%s: %s provider failed for key=%q: %v", LogPrefixResolve, r.name, key, err)
			return (*T)(nil), nil
		}
		if r.empty(res) {
			metrics.StrategyFailuresTotal.WithLabelValues(r.name, metrics.ReasonEmpty).Inc()
			r.l.Infof(ctx, "%s: %s provider returned nothing for key=%q", LogPrefixResolve, r.name, key)
			return (*T)(nil), nil
		}

		r.store(context.WithoutCancel(ctx), key, res)
		return res, nil
	})

	// The shared fetch outlives a departed caller; that caller gets nothing.
	select {
	case out := <-ch:
		return out.Val.(*T)
	case <-ctx.Done():
		r.l.Infof(ctx, "%s: %s caller gone while waiting on key=%q: %v", LogPrefixResolve, r.name, key, ctx.Err())
		return nil
	}
}

func (r *resolver[T]) lookup(ctx context.Context, key string) (*T, bool) {
	raw, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheLookupsTotal.WithLabelValues(r.name, metrics.CacheError).Inc()
		r.l.Warnf(ctx, "%s: cache read failed for key=%q, treating as miss: %v", LogPrefixResolve, key, err)
		return nil, false
	}
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues(r.name, metrics.CacheMiss).Inc()
		return nil, false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		metrics.CacheLookupsTotal.WithLabelValues(r.name, metrics.CacheError).Inc()
		r.l.Warnf(ctx, "%s: undecodable cache entry key=%q, treating as miss: %v", LogPrefixResolve, key, err)
		return nil, false
	}

	metrics.CacheLookupsTotal.WithLabelValues(r.name, metrics.CacheHit).Inc()
	r.l.Debugf(ctx, "%s: cache hit key=%q", LogPrefixResolve, key)
	return &v, true
}

func (r *resolver[T]) store(ctx context.Context, key string, v *T) {
	raw, err := json.Marshal(v)
	if err != nil {
		r.l.Errorf(ctx, "%s: failed to encode key=%q: %v", LogPrefixResolve, key, err)
		return
	}
	if err := r.cache.Put(ctx, key, raw); err != nil {
		r.l.Warnf(ctx, "%s: cache write failed for key=%q: %v", LogPrefixResolve, key, err)
	}
}
