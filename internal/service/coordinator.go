// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/connectivity"
	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/internal/store"
	"github.com/staffly/offline-sync/internal/utils"
	"github.com/staffly/offline-sync/internal/validators"
	"github.com/staffly/offline-sync/models"
)

type offlineCoordinator struct {
	engine  SyncEngine
	ops     store.OperationRepository
	cache   store.CacheRepository
	source  connectivity.Source
	syncJob SyncJob
	idGen   *utils.UUIDGenerator
	cfg     config.ClientSync
	logger  *logger.Logger

	// syncInProgress is the single-flight gate: only the goroutine that
	// flips it false→true may run a sync pass.
	syncInProgress atomic.Bool

	mu           sync.RWMutex
	queue        []models.PendingOperation
	lastSyncTime time.Time
	syncErr      string
	autoSync     bool
}

// NewOfflineCoordinator wires the coordinator. The queue starts empty; call
// Restore to load persisted operations, then Run on its own goroutine.
func NewOfflineCoordinator(
	engine SyncEngine,
	storages *store.ClientStorages,
	source connectivity.Source,
	cfg config.ClientSync,
	log *logger.Logger,
) OfflineCoordinator {
	c := &offlineCoordinator{
		engine:   engine,
		ops:      storages.Operations,
		cache:    storages.Cache,
		source:   source,
		idGen:    utils.NewUUIDGenerator(),
		cfg:      cfg,
		logger:   log,
		autoSync: cfg.AutoSync,
	}
	c.syncJob = NewSyncJob(c, cfg.Interval)

	return c
}

func (c *offlineCoordinator) Restore(ctx context.Context) error {
	persisted, err := c.ops.GetPendingOperations(ctx)
	if err != nil {
		return fmt.Errorf("restore pending operations: %w", err)
	}

	c.mu.Lock()
	c.queue = persisted
	c.mu.Unlock()

	c.logger.Info().
		Str("func", "offlineCoordinator.Restore").
		Int("pending", len(persisted)).
		Msg("pending operations restored")

	return nil
}

func (c *offlineCoordinator) Run(ctx context.Context) {
	// Unconditional: a job started later via ToggleAutoSync must not outlive
	// the run loop. Stop is a no-op when the job never started.
	defer c.syncJob.Stop()

	if c.autoSyncEnabled() {
		c.syncJob.Start(ctx, c.cfg.Interval)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-c.source.Events():
			if !ok {
				return
			}
			if !online {
				c.logger.Info().Str("func", "offlineCoordinator.Run").Msg("went offline, queueing mode")
				continue
			}

			// Back online: stale errors no longer describe reality.
			c.mu.Lock()
			c.syncErr = ""
			pending := len(c.queue)
			c.mu.Unlock()

			if pending == 0 || !c.autoSyncEnabled() {
				continue
			}

			c.logger.Info().Str("func", "offlineCoordinator.Run").Msg("back online, triggering sync")
			if _, err := c.SyncPendingOperations(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
				c.logger.Warn().Str("func", "offlineCoordinator.Run").Err(err).Msg("reconnect sync failed")
			}
		}
	}
}

func (c *offlineCoordinator) AddOfflineOperation(ctx context.Context, op models.PendingOperation) (models.PendingOperation, error) {
	if err := validators.ValidateOperation(op); err != nil {
		return models.PendingOperation{}, fmt.Errorf("validate operation: %w", err)
	}

	if op.ID == "" {
		op.ID = c.idGen.Generate()
	}
	if op.Timestamp.IsZero() {
		op.Timestamp = time.Now().UTC()
	}
	op.RetryCount = 0
	op.LastError = ""

	c.mu.Lock()
	for _, queued := range c.queue {
		if queued.ID == op.ID {
			c.mu.Unlock()
			return models.PendingOperation{}, fmt.Errorf("operation %q: %w", op.ID, store.ErrOperationExists)
		}
	}
	c.queue = append(c.queue, op)
	c.mu.Unlock()

	// Persistence is durability, not correctness: a full disk must not lose
	// the operation from the in-memory queue for this session. A duplicate id
	// in the store is a correctness failure and unwinds the enqueue.
	if err := c.ops.AddPendingOperation(ctx, op); err != nil {
		if errors.Is(err, store.ErrOperationExists) {
			c.removeQueued(op.ID)
			return models.PendingOperation{}, fmt.Errorf("persist operation %q: %w", op.ID, err)
		}
		c.logger.Warn().
			Str("func", "offlineCoordinator.AddOfflineOperation").
			Err(err).
			Str("operation_id", op.ID).
			Msg("operation not persisted, kept in memory only")
	}

	c.logger.Debug().
		Str("func", "offlineCoordinator.AddOfflineOperation").
		Str("operation_id", op.ID).
		Str("type", string(op.Type)).
		Msg("operation queued")

	if c.source.Online() && c.autoSyncEnabled() {
		go func() {
			syncCtx := context.WithoutCancel(ctx)
			if _, err := c.SyncPendingOperations(syncCtx); err != nil && !errors.Is(err, ErrSyncInProgress) {
				c.logger.Warn().
					Str("func", "offlineCoordinator.AddOfflineOperation").
					Err(err).
					Msg("background sync after enqueue failed")
			}
		}()
	}

	return op, nil
}

func (c *offlineCoordinator) SyncPendingOperations(ctx context.Context) ([]models.SyncResult, error) {
	return c.syncPass(ctx, false)
}

func (c *offlineCoordinator) ManualSync(ctx context.Context) ([]models.SyncResult, error) {
	if !c.source.Online() {
		return nil, ErrOffline
	}

	// The passive signal can be stale; a user-initiated sync verifies the
	// backend actually answers before dispatching.
	if !c.engine.CheckConnectivity(ctx) {
		return nil, ErrServerUnreachable
	}

	return c.syncPass(ctx, true)
}

func (c *offlineCoordinator) GetPendingOperations(_ context.Context) []models.PendingOperation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.PendingOperation, len(c.queue))
	copy(out, c.queue)
	return out
}

func (c *offlineCoordinator) ClearPendingOperations(ctx context.Context) error {
	c.mu.Lock()
	c.queue = nil
	c.mu.Unlock()

	if err := c.ops.ClearPendingOperations(ctx); err != nil {
		return fmt.Errorf("clear pending operations: %w", err)
	}

	c.logger.Info().Str("func", "offlineCoordinator.ClearPendingOperations").Msg("pending operations cleared")
	return nil
}

func (c *offlineCoordinator) ToggleAutoSync(ctx context.Context, enabled bool) {
	c.mu.Lock()
	changed := c.autoSync != enabled
	c.autoSync = enabled
	c.mu.Unlock()

	if !changed {
		return
	}

	if enabled {
		c.syncJob.Start(ctx, c.cfg.Interval)
	} else {
		c.syncJob.Stop()
	}

	c.logger.Info().
		Str("func", "offlineCoordinator.ToggleAutoSync").
		Bool("enabled", enabled).
		Msg("auto-sync toggled")
}

func (c *offlineCoordinator) Snapshot(ctx context.Context) models.SyncState {
	usage, err := c.cache.StorageUsage(ctx)
	if err != nil {
		c.logger.Debug().Str("func", "offlineCoordinator.Snapshot").Err(err).Msg("storage usage unavailable")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	pending := make([]models.PendingOperation, len(c.queue))
	copy(pending, c.queue)

	return models.SyncState{
		IsOnline:          c.source.Online(),
		SyncInProgress:    c.syncInProgress.Load(),
		PendingOperations: pending,
		LastSyncTime:      c.lastSyncTime,
		SyncError:         c.syncErr,
		StorageUsage:      usage,
		AutoSyncEnabled:   c.autoSync,
		SyncInterval:      c.cfg.Interval,
	}
}

// syncPass runs one guarded sync iteration: snapshot the queue, dispatch it
// (FIFO or priority order), then apply the results to the queue and the
// local store.
func (c *offlineCoordinator) syncPass(ctx context.Context, prioritized bool) ([]models.SyncResult, error) {
	if !c.source.Online() {
		return nil, ErrOffline
	}
	if !c.syncInProgress.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer c.syncInProgress.Store(false)

	snapshot := c.GetPendingOperations(ctx)
	if len(snapshot) == 0 {
		c.finishPass("")
		return nil, nil
	}

	c.logger.Info().
		Str("func", "offlineCoordinator.syncPass").
		Int("pending", len(snapshot)).
		Bool("prioritized", prioritized).
		Msg("sync pass started")

	var results []models.SyncResult
	if prioritized {
		results = c.engine.PrioritySync(ctx, snapshot)
	} else {
		results = c.engine.SyncOperations(ctx, snapshot)
	}

	c.applyResults(ctx, results)
	c.finishPass(firstError(results))

	return results, nil
}

// applyResults mutates the queue according to the per-operation outcomes:
// successes and permanent failures are evicted, transient failures get their
// retry count bumped and are evicted once the retry budget is exhausted.
func (c *offlineCoordinator) applyResults(ctx context.Context, results []models.SyncResult) {
	byID := make(map[string]models.SyncResult, len(results))
	for _, res := range results {
		byID[res.OperationID] = res
	}

	c.mu.Lock()
	kept := c.queue[:0]
	var evicted, retained []models.PendingOperation
	for _, op := range c.queue {
		res, ok := byID[op.ID]
		if !ok {
			// Enqueued mid-pass, untouched by this pass.
			kept = append(kept, op)
			continue
		}

		if res.Success || res.Permanent {
			evicted = append(evicted, op)
			continue
		}

		op.RetryCount++
		op.LastError = res.Error
		if op.RetryCount >= c.cfg.MaxRetries {
			evicted = append(evicted, op)
			continue
		}

		kept = append(kept, op)
		retained = append(retained, op)
	}
	c.queue = kept
	c.mu.Unlock()

	for _, op := range evicted {
		if op.RetryCount >= c.cfg.MaxRetries || byID[op.ID].Permanent {
			c.logger.Warn().
				Str("func", "offlineCoordinator.applyResults").
				Str("operation_id", op.ID).
				Str("type", string(op.Type)).
				Str("last_error", byID[op.ID].Error).
				Msg("operation evicted without sync")
		}
		if err := c.ops.RemovePendingOperation(ctx, op.ID); err != nil {
			c.logger.Warn().
				Str("func", "offlineCoordinator.applyResults").
				Err(err).
				Str("operation_id", op.ID).
				Msg("evicted operation not removed from store")
		}
	}

	for _, op := range retained {
		if err := c.ops.UpdatePendingOperation(ctx, op); err != nil {
			c.logger.Warn().
				Str("func", "offlineCoordinator.applyResults").
				Err(err).
				Str("operation_id", op.ID).
				Msg("retry state not persisted")
		}
	}
}

func (c *offlineCoordinator) finishPass(syncErr string) {
	c.mu.Lock()
	c.lastSyncTime = time.Now().UTC()
	c.syncErr = syncErr
	c.mu.Unlock()
}

// removeQueued drops the operation with the given id from the in-memory queue.
func (c *offlineCoordinator) removeQueued(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, op := range c.queue {
		if op.ID == id {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

func (c *offlineCoordinator) autoSyncEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.autoSync
}

// firstError returns the error message of the first failed result, or "" when
// the whole pass succeeded.
func firstError(results []models.SyncResult) string {
	for _, res := range results {
		if !res.Success {
			return res.Error
		}
	}
	return ""
}
