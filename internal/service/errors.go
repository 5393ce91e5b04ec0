package service

import "errors"

var (
	// ErrOffline is returned when a sync pass is requested while the
	// connectivity source reports offline.
	ErrOffline = errors.New("client is offline")

	// ErrSyncInProgress is returned when a sync pass is requested while
	// another pass is already running. The active pass is unaffected.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrUnknownOperationType marks a queued operation whose type has no
	// dispatch route. Such operations fail permanently.
	ErrUnknownOperationType = errors.New("unknown operation type")

	// ErrMalformedPayload marks a queued operation whose payload cannot be
	// interpreted for dispatch. Retrying cannot fix the payload, so the
	// failure is permanent.
	ErrMalformedPayload = errors.New("malformed operation payload")

	// ErrServerUnreachable is returned by ManualSync when the active
	// connectivity probe gets no answer from the backend.
	ErrServerUnreachable = errors.New("server unreachable")
)
