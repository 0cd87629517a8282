package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// AuthorizationHeader is the HTTP header carrying the bearer token.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
	// RequestIDHeader is the HTTP header carrying a per-request correlation ID.
	RequestIDHeader = "X-Request-ID"

	userAgentHeader = "User-Agent"
	redactedValue   = "[REDACTED]"
)
