// Package utils provides small helpers shared by the transport and client layers:
// User-Agent providers, content type checks and slice mapping.
package utils
