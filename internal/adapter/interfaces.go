// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

// Package adapter provides the transport layer for communicating with the
// payroll backend.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// and the location service from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling, and classified as transient or permanent via [IsTransient]
// for the retry policy.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/staffly/offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the payroll
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every request carries "Authorization: Bearer <token>". A missing token
// results in an empty bearer value, not a blocked call; rejecting
// unauthenticated requests is the server's responsibility.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// Called at startup with the token restored from the offline cache and
	// again whenever the session is refreshed.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SubmitPunch posts a time-tracking punch payload to the fixed punch
	// route and returns the server response body.
	SubmitPunch(ctx context.Context, data json.RawMessage) (json.RawMessage, error)

	// SubmitCorrection posts a time-entry correction request to the fixed
	// corrections route and returns the server response body.
	SubmitCorrection(ctx context.Context, data json.RawMessage) (json.RawMessage, error)

	// UpdateProfile sends a profile diff to the user update route keyed by
	// userID and returns the server response body.
	UpdateProfile(ctx context.Context, userID int64, data json.RawMessage) (json.RawMessage, error)

	// Call performs a caller-specified request. The body is sent only for
	// POST and PUT; other methods carry no body.
	Call(ctx context.Context, method, endpoint string, body json.RawMessage) (json.RawMessage, error)

	// SubmitBatch posts the whole operation set as a single combined
	// submission.
	SubmitBatch(ctx context.Context, ops []models.PendingOperation) error

	// Health issues the lightweight authenticated connectivity probe. The
	// call is bounded by the configured probe timeout independently of ctx.
	Health(ctx context.Context) error

	// AllowedLocations fetches the employer-approved work locations
	// (geofences plus allowed WiFi network names).
	AllowedLocations(ctx context.Context, employerID int64) ([]models.Geofence, error)
}
