package credentials

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

// TokenKey is the well-known key the bearer token is stored under.
const TokenKey = "token"

// Store is a single-slot bearer token storage.
type Store interface {
	// Token returns the stored token and true, or an empty string and false when nothing is stored.
	// Read failures are reported as absence.
	Token() (string, bool)
	// SetToken stores token, replacing any previous value.
	// An empty token behaves as ClearToken.
	SetToken(token string) error
	// ClearToken removes the stored token. Clearing an empty store is a no-op.
	ClearToken() error
}
