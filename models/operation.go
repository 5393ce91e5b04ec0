// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package models

import (
	"encoding/json"
	"time"
)

// OperationType identifies the kind of write a queued operation represents.
// The dispatcher uses it to select the backend route; unknown values are a
// permanent local failure and are never retried.
type OperationType string

const (
	// OperationTimePunch is a clock-in/clock-out time-tracking punch.
	// Dispatched first during priority sync because downstream payroll
	// calculations depend on punch ordering.
	OperationTimePunch OperationType = "TIME_PUNCH"

	// OperationCorrectionRequest is a request to correct a previously
	// recorded time entry.
	OperationCorrectionRequest OperationType = "CORRECTION_REQUEST"

	// OperationProfileUpdate is a partial update of the employee profile.
	// The target route is keyed by the user id embedded in the payload.
	OperationProfileUpdate OperationType = "PROFILE_UPDATE"

	// OperationGenericAPI is an arbitrary caller-supplied request. Method
	// and Endpoint must be set on the operation; the body is sent only for
	// POST and PUT.
	OperationGenericAPI OperationType = "GENERIC_API"
)

// Valid reports whether t is one of the known operation types.
func (t OperationType) Valid() bool {
	switch t {
	case OperationTimePunch, OperationCorrectionRequest, OperationProfileUpdate, OperationGenericAPI:
		return true
	default:
		return false
	}
}

// PendingOperation is a queued, not-yet-confirmed write destined for the
// backend. Operations are created when a UI action cannot complete online,
// mutated (RetryCount, LastError) only by the sync pass, and destroyed on
// successful sync or after the retry budget is exhausted.
type PendingOperation struct {
	// ID uniquely identifies the operation within the queue. Assigned at
	// enqueue time and stable across persistence reloads.
	ID string `json:"id"`

	// Type selects the dispatch route.
	Type OperationType `json:"type"`

	// Data is the opaque payload specific to Type (punch coordinates,
	// correction fields, profile diff, generic request body).
	Data json.RawMessage `json:"data,omitempty"`

	// Method and Endpoint are required only for OperationGenericAPI;
	// all other types have a fixed server route.
	Method   string `json:"method,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`

	// Timestamp is the creation time of the operation.
	Timestamp time.Time `json:"timestamp"`

	// RetryCount starts at 0 and is incremented on each failed sync attempt.
	RetryCount int `json:"retry_count"`

	// LastError holds the most recent failure message, if any.
	LastError string `json:"last_error,omitempty"`
}

// ProfileUpdateData is the decoded shape of a PROFILE_UPDATE payload. Only
// UserID is interpreted by the client; the rest of the payload is forwarded
// verbatim.
type ProfileUpdateData struct {
	UserID int64 `json:"user_id"`
}

// SyncResult is the per-operation outcome of a sync pass. A failure in one
// operation never aborts processing of the remaining operations.
type SyncResult struct {
	// OperationID is the id of the operation this result belongs to.
	OperationID string `json:"operation_id"`

	// Success is true if the backend accepted the operation.
	Success bool `json:"success"`

	// Result holds the server response body for successful operations.
	Result json.RawMessage `json:"result,omitempty"`

	// Error holds the failure message for unsuccessful operations.
	Error string `json:"error,omitempty"`

	// Permanent marks failures that must not be retried (unknown operation
	// type, HTTP 4xx other than 408/429). The coordinator evicts such
	// operations on first failure.
	Permanent bool `json:"-"`
}

// BatchRequest is the body of a combined POST /api/sync/batch submission.
type BatchRequest struct {
	Operations []PendingOperation `json:"operations"`
}
