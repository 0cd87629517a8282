// Package cryptoalert provides a Go client for the CryptoAlert dashboard API.
// It covers email/password login and registration, the Telegram account binding
// handshake, the current user lookup, and subscription management.
// Every request goes through the transport chain from internal/transport/http,
// so the stored bearer token is attached in exactly one place.
// Non-2xx responses and network failures surface as *APIError values that
// match the package's sentinel errors with errors.Is.
package cryptoalert
