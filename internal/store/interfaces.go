// Package store implements the durable local persistence layer: the
// pending-operation queue and a generic key-value cache for offline-readable
// data, both backed by a single SQLite database on the device.
package store

import (
	"context"

	"github.com/staffly/offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OperationRepository is the durable backing for the pending-operation queue.
// Each call is independently atomic: a crash mid-call never corrupts
// unrelated entries. Multi-call sequences are not atomic across calls;
// residual operations left by a crash are reprocessed idempotently on the
// next sync pass rather than duplicated.
type OperationRepository interface {
	// AddPendingOperation persists a new queued operation. The operation id
	// is unique within the queue; inserting a duplicate id fails with
	// [ErrOperationExists].
	AddPendingOperation(ctx context.Context, op models.PendingOperation) error

	// UpdatePendingOperation rewrites the mutable fields (retry count, last
	// error) of an existing operation. Returns [ErrOperationNotFound] if no
	// operation with the given id is queued.
	UpdatePendingOperation(ctx context.Context, op models.PendingOperation) error

	// RemovePendingOperation deletes the operation with the given id.
	// Removing an id that is not queued is not an error.
	RemovePendingOperation(ctx context.Context, id string) error

	// GetPendingOperations returns all queued operations in persisted FIFO
	// order.
	GetPendingOperations(ctx context.Context) ([]models.PendingOperation, error)

	// GetPendingOperationsByType returns queued operations of the given
	// types in persisted FIFO order. An empty filter returns everything.
	GetPendingOperationsByType(ctx context.Context, types ...models.OperationType) ([]models.PendingOperation, error)

	// ClearPendingOperations empties the queue.
	ClearPendingOperations(ctx context.Context) error
}

// CacheRepository is the generic offline cache, independent of the operation
// queue. It also reports approximate storage usage for UI display.
type CacheRepository interface {
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// GetItem returns the value stored under key, or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)

	// RemoveItem deletes the value stored under key. Removing a missing key
	// is not an error.
	RemoveItem(ctx context.Context, key string) error

	// ClearAll removes every cached item. The operation queue is not
	// touched.
	ClearAll(ctx context.Context) error

	// StorageUsage returns the approximate size of the local database in
	// bytes. The value is informational only; no hard cap is enforced.
	StorageUsage(ctx context.Context) (int64, error)
}
