// Package validators checks the shape of pending operations before they enter
// the queue, so malformed writes are rejected at enqueue time instead of
// surfacing as permanent dispatch failures later.
package validators

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/staffly/offline-sync/models"
)

// allowedGenericMethods lists the HTTP methods a GENERIC_API operation may
// carry.
var allowedGenericMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// ValidateOperation checks op's shape:
//   - Type must be one of the known operation types;
//   - TIME_PUNCH, CORRECTION_REQUEST and PROFILE_UPDATE require a payload;
//   - GENERIC_API requires a whitelisted method and a non-empty endpoint.
//
// Returns a wrapped sentinel error describing the first violation found.
func ValidateOperation(op models.PendingOperation) error {
	if !op.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperationType, op.Type)
	}

	switch op.Type {
	case models.OperationGenericAPI:
		method := strings.ToUpper(strings.TrimSpace(op.Method))
		if _, ok := allowedGenericMethods[method]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidMethod, op.Method)
		}
		if strings.TrimSpace(op.Endpoint) == "" {
			return ErrMissingEndpoint
		}
	default:
		if len(op.Data) == 0 {
			return fmt.Errorf("%w: operation type %s", ErrEmptyPayload, op.Type)
		}
	}

	return nil
}
