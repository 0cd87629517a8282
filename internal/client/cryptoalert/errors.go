package cryptoalert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error classes of failed API calls. An *APIError matches exactly one of them.
var (
	// ErrInvalidRequest indicates malformed input rejected by the server (400, 422).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAuthFailure indicates wrong credentials on login.
	ErrAuthFailure = errors.New("wrong email or password")
	// ErrUnauthorized indicates a missing, invalid or expired bearer token on an authenticated endpoint.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict indicates the identity is already registered.
	ErrConflict = errors.New("already exists")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrServerUnavailable indicates a 5xx response or a network failure.
	ErrServerUnavailable = errors.New("server unavailable")
	// ErrUnexpectedHTTPStatus indicates any other non-2xx HTTP status.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrResponseTooLarge indicates that a successful response body exceeds the read limit.
	ErrResponseTooLarge = errors.New("response body too large")
)

// Local validation errors, returned before any request is sent.
var (
	// ErrEmptySymbol indicates that a subscription symbol is blank.
	ErrEmptySymbol = errors.New("symbol cannot be empty")
	// ErrEmptyCycles indicates that a subscription was requested without cycles.
	ErrEmptyCycles = errors.New("at least one cycle is required")
	// ErrEmptyCycle indicates that a cycle value is blank.
	ErrEmptyCycle = errors.New("cycle cannot be empty")
	// ErrEmptyCorrelationToken indicates that a bind status poll has no correlation token.
	ErrEmptyCorrelationToken = errors.New("binding correlation token cannot be empty")
)

// APIError describes a failed API call.
// StatusCode is 0 when no HTTP response was received.
type APIError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// Path is the API path of the failed request.
	Path string
	// StatusCode is the HTTP status code, or 0 for transport failures.
	StatusCode int
	// Code is the machine-readable error code returned by the server, if any.
	Code string
	// Message is the human-readable error message returned by the server, if any.
	Message string
	// Detail holds a structured "detail" value (e.g. a list of validation errors) verbatim.
	Detail json.RawMessage
	// Body is the raw response body.
	Body []byte

	kind  error
	cause error
}

// errorBody covers the error envelopes the backend is known to produce:
// {"code": ..., "message": ...}, {"error": ...} and {"detail": ...}.
type errorBody struct {
	Code    json.RawMessage `json:"code"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s: %v", e.Method, e.Path, e.kind)

	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, " (HTTP %d)", e.StatusCode)
	}

	if e.Code != "" {
		fmt.Fprintf(&sb, " [%s]", e.Code)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}

	return sb.String()
}

// Unwrap exposes both the error class and the underlying transport error, if any.
func (e *APIError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.cause}
}

// Kind returns the sentinel error class of e.
func (e *APIError) Kind() error {
	return e.kind
}

// newStatusError builds an APIError from a non-2xx response.
func newStatusError(method, path string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
		kind:       classifyStatus(path, statusCode),
	}

	var parsed errorBody
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &parsed) != nil {
		apiErr.Message = strings.TrimSpace(string(body))

		return apiErr
	}

	apiErr.Code = rawToString(parsed.Code)
	apiErr.Message = parsed.Message

	if apiErr.Code == "" {
		apiErr.Code = parsed.Error
	} else if apiErr.Message == "" {
		apiErr.Message = parsed.Error
	}

	// A string detail is a message, anything else is kept for the caller to inspect.
	switch {
	case len(parsed.Detail) == 0 || string(parsed.Detail) == "null":
	case parsed.Detail[0] == '"':
		if apiErr.Message == "" {
			apiErr.Message = rawToString(parsed.Detail)
		}
	default:
		apiErr.Detail = parsed.Detail
	}

	return apiErr
}

// newTransportError builds an APIError for a request that got no response.
func newTransportError(method, path string, cause error) *APIError {
	return &APIError{
		Method: method,
		Path:   path,
		kind:   ErrServerUnavailable,
		cause:  cause,
	}
}

// classifyStatus maps an HTTP status to an error class.
// 401 means wrong credentials on the login endpoint and a bad token everywhere else.
func classifyStatus(path string, statusCode int) error {
	switch {
	case statusCode == http.StatusBadRequest, statusCode == http.StatusUnprocessableEntity:
		return ErrInvalidRequest
	case statusCode == http.StatusUnauthorized && path == apiLoginURI:
		return ErrAuthFailure
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return ErrUnauthorized
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	case statusCode == http.StatusConflict:
		return ErrConflict
	case statusCode >= http.StatusInternalServerError:
		return ErrServerUnavailable
	default:
		return ErrUnexpectedHTTPStatus
	}
}

// rawToString returns a JSON string's value, or the literal text of any other JSON value.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}
