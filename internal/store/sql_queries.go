// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/staffly/offline-sync/models"
)

const (
	insertPendingOperation = `
		INSERT INTO pending_operations (
			id,
			type,
			data,
			method,
			endpoint,
			created_at,
			retry_count,
			last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	deletePendingOperation = `
		DELETE FROM pending_operations
		WHERE id = ?;`

	clearPendingOperations = `DELETE FROM pending_operations;`

	upsertCacheItem = `
		INSERT INTO offline_cache (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	getCacheItem = `
		SELECT value
		FROM offline_cache
		WHERE key = ?;`

	deleteCacheItem = `
		DELETE FROM offline_cache
		WHERE key = ?;`

	clearCacheItems = `DELETE FROM offline_cache;`

	// Approximate database size; informational only.
	storageUsage = `SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size();`
)

// operationColumns is the scan order shared by all pending-operation SELECTs.
var operationColumns = []string{
	"id",
	"type",
	"data",
	"method",
	"endpoint",
	"created_at",
	"retry_count",
	"last_error",
}

// buildSelectOperationsQuery builds the FIFO-ordered SELECT over the queue,
// optionally restricted to the given operation types.
func buildSelectOperationsQuery(types ...models.OperationType) (string, []any, error) {
	builder := sq.Select(operationColumns...).
		From("pending_operations").
		OrderBy("seq ASC")

	if len(types) > 0 {
		builder = builder.Where(sq.Eq{"type": types})
	}

	return builder.ToSql()
}

// buildUpdateOperationQuery builds the UPDATE limited to the fields the sync
// pass is allowed to mutate.
func buildUpdateOperationQuery(op models.PendingOperation) (string, []any, error) {
	return sq.Update("pending_operations").
		Set("retry_count", op.RetryCount).
		Set("last_error", op.LastError).
		Where(sq.Eq{"id": op.ID}).
		ToSql()
}
