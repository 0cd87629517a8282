package http

import "net/http"

// TokenProvider supplies the bearer token for outgoing requests.
// credentials.Store satisfies it.
type TokenProvider interface {
	// Token returns the current token and whether one is present.
	Token() (string, bool)
}

// AuthInjector is a http.RoundTripper that attaches the stored bearer token to every request.
//
// The provider is read synchronously right before the request is handed to the next
// round tripper, so a token change affects only requests sent after it.
// The caller's request is never modified: headers are set on a shallow clone and the body is shared untouched.
type AuthInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// tokens provides the bearer token.
	tokens TokenProvider
}

// NewAuthInjector creates and returns a new instance of AuthInjector.
func NewAuthInjector(next http.RoundTripper, tokens TokenProvider) http.RoundTripper {
	return &AuthInjector{
		next:   next,
		tokens: tokens,
	}
}

// RoundTrip sets "Authorization: Bearer <token>" when a token is stored
// and removes any Authorization header otherwise.
// It implements the http.RoundTripper interface.
func (t *AuthInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	outgoing := req.Clone(req.Context())

	token, ok := t.tokens.Token()
	if ok && token != "" {
		outgoing.Header.Set(AuthorizationHeader, BearerPrefix+token)
	} else {
		outgoing.Header.Del(AuthorizationHeader)
	}

	return t.next.RoundTrip(outgoing)
}
