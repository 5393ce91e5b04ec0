// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

// Package service contains the sync core: the dispatch engine that replays
// queued operations against the backend, and the offline coordinator that
// owns the queue, the sync state, and the single-flight sync gate.
package service

import (
	"context"
	"time"

	"github.com/staffly/offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncEngine replays pending operations against the backend. It is stateless:
// callers supply the operation set and interpret the per-operation results.
type SyncEngine interface {
	// SyncOperations dispatches each operation to its type-specific backend
	// route, in the given order, and returns one result per operation. A
	// failure in one operation never aborts the rest; the failure is
	// captured in its result, marked permanent when retrying cannot help.
	SyncOperations(ctx context.Context, ops []models.PendingOperation) []models.SyncResult

	// PrioritySync dispatches like SyncOperations but orders the set by
	// business criticality first: time punches, then corrections, then
	// profile updates, then generic calls. Operations of equal priority
	// keep their relative queue order.
	PrioritySync(ctx context.Context, ops []models.PendingOperation) []models.SyncResult

	// BatchSyncWithRetry submits the whole set as one combined request,
	// retrying transient failures with exponential backoff up to the
	// configured retry budget. Permanent failures abort immediately.
	BatchSyncWithRetry(ctx context.Context, ops []models.PendingOperation) error

	// CheckConnectivity actively probes the backend health endpoint and
	// reports whether it answered. Used where the passive connectivity
	// signal is not trustworthy enough to act on.
	CheckConnectivity(ctx context.Context) bool
}

// OfflineCoordinator owns the pending-operation queue and the sync lifecycle.
// It is the single writer of the sync state; collaborators observe it through
// Snapshot.
type OfflineCoordinator interface {
	// Restore loads the persisted queue from the local store into memory.
	// Called once at startup before Run.
	Restore(ctx context.Context) error

	// Run consumes connectivity transitions until ctx is cancelled: an
	// online transition clears the last sync error and triggers a sync
	// pass. Run blocks; start it on its own goroutine.
	Run(ctx context.Context)

	// AddOfflineOperation validates op, assigns it an id and creation
	// timestamp, appends it to the queue and persists it. When the client
	// is online and auto-sync is enabled, a sync pass is triggered in the
	// background. Returns the enqueued operation with its assigned fields.
	AddOfflineOperation(ctx context.Context, op models.PendingOperation) (models.PendingOperation, error)

	// SyncPendingOperations runs one sync pass over the queue in FIFO
	// order. Returns [ErrOffline] when the connectivity source reports
	// offline and [ErrSyncInProgress] when another pass is already active.
	SyncPendingOperations(ctx context.Context) ([]models.SyncResult, error)

	// ManualSync is the user-initiated pass: it actively probes the backend
	// first and dispatches in priority order rather than FIFO.
	ManualSync(ctx context.Context) ([]models.SyncResult, error)

	// GetPendingOperations returns a copy of the queue in FIFO order.
	GetPendingOperations(ctx context.Context) []models.PendingOperation

	// ClearPendingOperations discards the whole queue, in memory and in the
	// local store.
	ClearPendingOperations(ctx context.Context) error

	// ToggleAutoSync enables or disables the periodic sync timer.
	ToggleAutoSync(ctx context.Context, enabled bool)

	// Snapshot returns a copy of the current sync state for UI display.
	Snapshot(ctx context.Context) models.SyncState
}

// SyncJob is a background worker that periodically triggers a sync pass while
// auto-sync is enabled.
type SyncJob interface {
	// Start launches the background goroutine, stopping any previous run
	// first. A non-positive interval falls back to the configured default.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
