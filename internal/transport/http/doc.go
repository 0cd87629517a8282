// Package http provides the RoundTripper chain every API request goes through:
// bearer token injection, User-Agent and request ID headers, and debug-level
// request/response logging with credentials redacted.
package http
