package validators

import "errors"

// Validation errors returned by [ValidateOperation]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownOperationType is returned when the operation type is not
	// one of the known dispatchable types.
	ErrUnknownOperationType = errors.New("unknown operation type")

	// ErrEmptyPayload is returned when a typed operation carries no data.
	ErrEmptyPayload = errors.New("operation payload is empty")

	// ErrInvalidMethod is returned when a GENERIC_API operation carries an
	// HTTP method outside the whitelist.
	ErrInvalidMethod = errors.New("invalid http method for generic operation")

	// ErrMissingEndpoint is returned when a GENERIC_API operation carries
	// no endpoint.
	ErrMissingEndpoint = errors.New("generic operation requires an endpoint")
)
