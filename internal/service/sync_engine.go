// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/sethvargo/go-retry"
	"github.com/staffly/offline-sync/internal/adapter"
	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/internal/utils"
	"github.com/staffly/offline-sync/models"
)

// typePriority ranks operation types for PrioritySync. Lower dispatches
// earlier. Unknown types sort last so their permanent failures never delay
// real work.
var typePriority = map[models.OperationType]int{
	models.OperationTimePunch:         0,
	models.OperationCorrectionRequest: 1,
	models.OperationProfileUpdate:     2,
	models.OperationGenericAPI:        3,
}

const unknownTypePriority = 4

type syncEngine struct {
	adapter adapter.ServerAdapter
	cfg     config.ClientSync
	logger  *logger.Logger
}

func NewSyncEngine(serverAdapter adapter.ServerAdapter, cfg config.ClientSync, log *logger.Logger) SyncEngine {
	return &syncEngine{
		adapter: serverAdapter,
		cfg:     cfg,
		logger:  log,
	}
}

func (e *syncEngine) SyncOperations(ctx context.Context, ops []models.PendingOperation) []models.SyncResult {
	results := make([]models.SyncResult, 0, len(ops))
	for _, op := range ops {
		body, err := e.dispatch(ctx, op)
		if err != nil {
			e.logger.Warn().
				Str("func", "syncEngine.SyncOperations").
				Err(err).
				Str("operation_id", op.ID).
				Str("type", string(op.Type)).
				Msg("operation dispatch failed")

			results = append(results, models.SyncResult{
				OperationID: op.ID,
				Success:     false,
				Error:       err.Error(),
				Permanent:   isPermanent(err),
			})
			continue
		}

		results = append(results, models.SyncResult{
			OperationID: op.ID,
			Success:     true,
			Result:      body,
		})
	}

	return results
}

func (e *syncEngine) PrioritySync(ctx context.Context, ops []models.PendingOperation) []models.SyncResult {
	ordered := make([]models.PendingOperation, len(ops))
	copy(ordered, ops)

	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityOf(ordered[i].Type) < priorityOf(ordered[j].Type)
	})

	return e.SyncOperations(ctx, ordered)
}

func (e *syncEngine) BatchSyncWithRetry(ctx context.Context, ops []models.PendingOperation) error {
	if len(ops) == 0 {
		return nil
	}

	err := retry.Do(ctx, e.backoff(), func(ctx context.Context) error {
		if err := e.adapter.SubmitBatch(ctx, ops); err != nil {
			if adapter.IsTransient(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch submission: %w", err)
	}

	return nil
}

func (e *syncEngine) CheckConnectivity(ctx context.Context) bool {
	return e.adapter.Health(ctx) == nil
}

// backoff builds the retry schedule for batch submission: exponential delays
// starting at the configured base (1s, 2s, 4s, ...) capped at the configured
// retry budget.
func (e *syncEngine) backoff() retry.Backoff {
	return retry.WithMaxRetries(uint64(e.cfg.MaxRetries), retry.NewExponential(e.cfg.BackoffBase))
}

// dispatch routes one operation to its backend call.
func (e *syncEngine) dispatch(ctx context.Context, op models.PendingOperation) (json.RawMessage, error) {
	switch op.Type {
	case models.OperationTimePunch:
		return e.adapter.SubmitPunch(ctx, op.Data)

	case models.OperationCorrectionRequest:
		return e.adapter.SubmitCorrection(ctx, op.Data)

	case models.OperationProfileUpdate:
		userID, err := e.profileUserID(op.Data)
		if err != nil {
			return nil, err
		}
		return e.adapter.UpdateProfile(ctx, userID, op.Data)

	case models.OperationGenericAPI:
		return e.adapter.Call(ctx, op.Method, op.Endpoint, op.Data)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperationType, op.Type)
	}
}

// profileUserID resolves the target user of a profile update: the user_id
// embedded in the payload, falling back to the subject of the session token
// when the payload does not carry one.
func (e *syncEngine) profileUserID(data json.RawMessage) (int64, error) {
	var payload models.ProfileUpdateData
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("%w: decode profile update: %v", ErrMalformedPayload, err)
	}
	if payload.UserID != 0 {
		return payload.UserID, nil
	}

	userID, err := utils.UserIDFromToken(e.adapter.Token())
	if err != nil {
		return 0, fmt.Errorf("%w: no target user for profile update: %v", ErrMalformedPayload, err)
	}

	return userID, nil
}

// isPermanent classifies a dispatch failure for the retry policy: failures
// produced locally (unknown type, unusable payload) and non-retryable HTTP
// responses are permanent, everything else is worth another attempt.
func isPermanent(err error) bool {
	if errors.Is(err, ErrUnknownOperationType) || errors.Is(err, ErrMalformedPayload) {
		return true
	}
	return !adapter.IsTransient(err)
}

func priorityOf(t models.OperationType) int {
	if p, ok := typePriority[t]; ok {
		return p
	}
	return unknownTypePriority
}
