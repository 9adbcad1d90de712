package middleware

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)

// Gin context keys.
const (
	KeyRequestID = "request_id"
	KeyUserID    = "user_id"
)

const (
	limiterCapacity = 1000
	limiterIdleTTL  = 5 * 60 // seconds
)
