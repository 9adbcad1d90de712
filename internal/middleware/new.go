package middleware

import (
	"repair-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
