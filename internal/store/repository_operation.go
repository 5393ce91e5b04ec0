package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/models"
)

type operationRepository struct {
	*DB
	logger *logger.Logger
}

func NewOperationRepository(db *DB, logger *logger.Logger) OperationRepository {
	return &operationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *operationRepository) AddPendingOperation(ctx context.Context, op models.PendingOperation) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertPendingOperation,
		op.ID,
		string(op.Type),
		string(op.Data),
		op.Method,
		op.Endpoint,
		op.Timestamp,
		op.RetryCount,
		op.LastError,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("operation %s: %w", op.ID, ErrOperationExists)
		}

		log.Err(err).
			Str("func", "operationRepository.AddPendingOperation").
			Str("operation_id", op.ID).
			Msg("failed to insert pending operation")
		return fmt.Errorf("failed to insert pending operation (id=%s): %w", op.ID, errors.Join(ErrExecutingStatement, err))
	}

	return nil
}

func (r *operationRepository) UpdatePendingOperation(ctx context.Context, op models.PendingOperation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOperationQuery(op)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.UpdatePendingOperation").
			Str("operation_id", op.ID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.UpdatePendingOperation").
			Str("operation_id", op.ID).
			Msg("failed to update pending operation")
		return fmt.Errorf("failed to update pending operation (id=%s): %w", op.ID, errors.Join(ErrExecutingStatement, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for operation update (id=%s): %w", op.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("operation %s: %w", op.ID, ErrOperationNotFound)
	}

	return nil
}

func (r *operationRepository) RemovePendingOperation(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deletePendingOperation, id)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.RemovePendingOperation").
			Str("operation_id", id).
			Msg("failed to delete pending operation")
		return fmt.Errorf("failed to delete pending operation (id=%s): %w", id, errors.Join(ErrExecutingStatement, err))
	}

	return nil
}

func (r *operationRepository) GetPendingOperations(ctx context.Context) ([]models.PendingOperation, error) {
	return r.GetPendingOperationsByType(ctx)
}

func (r *operationRepository) GetPendingOperationsByType(ctx context.Context, types ...models.OperationType) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOperationsQuery(types...)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.GetPendingOperationsByType").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.GetPendingOperationsByType").
			Msg("failed to query pending operations")
		return nil, fmt.Errorf("failed to query pending operations: %w", errors.Join(ErrExecutingQuery, err))
	}
	defer rows.Close()

	var ops []models.PendingOperation

	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "operationRepository.GetPendingOperationsByType").
				Msg("failed to scan pending operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "operationRepository.GetPendingOperationsByType").
			Msg("row iteration failed")
		return nil, fmt.Errorf("pending operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (r *operationRepository) ClearPendingOperations(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearPendingOperations); err != nil {
		log.Err(err).
			Str("func", "operationRepository.ClearPendingOperations").
			Msg("failed to clear pending operations")
		return fmt.Errorf("failed to clear pending operations: %w", errors.Join(ErrExecutingStatement, err))
	}

	return nil
}

func scanOperation(rows *sql.Rows) (models.PendingOperation, error) {
	var op models.PendingOperation
	var opType, data string

	err := rows.Scan(
		&op.ID,
		&opType,
		&data,
		&op.Method,
		&op.Endpoint,
		&op.Timestamp,
		&op.RetryCount,
		&op.LastError,
	)
	if err != nil {
		return models.PendingOperation{}, err
	}

	op.Type = models.OperationType(opType)
	if data != "" {
		op.Data = json.RawMessage(data)
	}

	return op, nil
}
