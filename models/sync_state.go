package models

import "time"

// SyncState is a point-in-time snapshot of the offline coordinator's state,
// produced for UI collaborators. It is a copy: mutating a snapshot has no
// effect on the coordinator.
type SyncState struct {
	// IsOnline mirrors the connectivity source's current signal.
	IsOnline bool `json:"is_online"`

	// SyncInProgress is true only while a sync pass is executing. At most
	// one pass is active at any time.
	SyncInProgress bool `json:"sync_in_progress"`

	// PendingOperations is the queue in FIFO order.
	PendingOperations []PendingOperation `json:"pending_operations"`

	// LastSyncTime is when the most recent sync pass finished, zero if no
	// pass has completed yet.
	LastSyncTime time.Time `json:"last_sync_time"`

	// SyncError is the most recent sync failure message, empty when the
	// last pass fully succeeded or after an online transition cleared it.
	SyncError string `json:"sync_error,omitempty"`

	// StorageUsage is the approximate local store size in bytes. Used for
	// UI display and a soft cap warning only.
	StorageUsage int64 `json:"storage_usage"`

	// AutoSyncEnabled reports whether the periodic sync timer is running.
	AutoSyncEnabled bool `json:"auto_sync_enabled"`

	// SyncInterval is the periodic sync timer interval.
	SyncInterval time.Duration `json:"sync_interval"`
}
