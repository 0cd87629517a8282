package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/oshokin/cryptoalert-cli/internal/utils"
)

// HeaderInjector is a http.RoundTripper that fills in a header when the request does not carry it.
// It backs both the User-Agent and the request ID decorators.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// header is the canonical name of the injected header.
	header string
	// value produces the header value for a single request.
	value func() string
}

// NewUserAgentInjector creates a HeaderInjector that sets User-Agent from userAgentProvider.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &HeaderInjector{
		next:   next,
		header: userAgentHeader,
		value:  userAgentProvider.GetUserAgent,
	}
}

// NewRequestIDInjector creates a HeaderInjector that tags each request with a random UUID,
// so a failing call can be matched to backend logs.
func NewRequestIDInjector(next http.RoundTripper) http.RoundTripper {
	return &HeaderInjector{
		next:   next,
		header: RequestIDHeader,
		value:  uuid.NewString,
	}
}

// RoundTrip executes a single HTTP transaction, injecting the header if it is missing or empty.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(t.header) != "" {
		return t.next.RoundTrip(req)
	}

	outgoing := req.Clone(req.Context())
	outgoing.Header.Set(t.header, t.value())

	return t.next.RoundTrip(outgoing)
}
