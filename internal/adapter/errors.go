package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from well-known HTTP responses. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnauthorized is returned for HTTP 401 responses. It is permanent:
	// retrying with the same token cannot succeed.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrUnsupportedMethod is returned by Call when the supplied HTTP method
	// is not one of GET, POST, PUT, PATCH, DELETE.
	ErrUnsupportedMethod = errors.New("unsupported http method")
)

// genericErrorMessage is surfaced when a non-2xx response body cannot be
// parsed as a {message} JSON document.
const genericErrorMessage = "Network error"

// HTTPError carries the status code of a non-2xx backend response together
// with the server-supplied message. The code drives the transient/permanent
// retry classification.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// IsTransient reports whether err represents a failure worth retrying:
// transport-level errors (timeouts, connection loss), HTTP 5xx, and the
// explicitly retryable 408/429 statuses. Everything else — 4xx responses and
// local programmer errors — is permanent and must not consume further
// attempts.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUnsupportedMethod) {
		return false
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode >= 500:
			return true
		case httpErr.StatusCode == 408 || httpErr.StatusCode == 429:
			return true
		default:
			return false
		}
	}

	// No HTTP status at all: the request never completed (DNS failure,
	// connection refused, timeout). Treated as transient.
	return true
}
