package middleware

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"repair-assistant/pkg/response"
)

var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimit throttles per user, falling back to the client IP when the
// route is not behind UserScope.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.GetString(KeyUserID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key. A bucket expires after
// idleTTL without requests.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return newRateLimiterWithTTL(requestsPerMin, limiterIdleTTL*time.Second)
}

func newRateLimiterWithTTL(requestsPerMin int, idleTTL time.Duration) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, idleTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if !rl.bucket(key).Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}

// bucket returns the key's limiter, creating it at most once, and restarts
// its idle TTL.
func (rl *rateLimiter) bucket(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	return limiter
}
