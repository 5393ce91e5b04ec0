package service

import (
	"context"
	"sync"
	"time"

	"github.com/staffly/offline-sync/internal/config"
)

type syncJob struct {
	coordinator     OfflineCoordinator
	defaultInterval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that triggers a coordinator sync pass on a
// ticker. The job is idle until Start is called.
func NewSyncJob(coordinator OfflineCoordinator, defaultInterval time.Duration) SyncJob {
	if defaultInterval <= 0 {
		defaultInterval = config.DefaultSyncInterval
	}
	return &syncJob{coordinator: coordinator, defaultInterval: defaultInterval}
}

// Start implements SyncJob. It stops any previously running job, then launches
// a background goroutine that triggers a sync pass every interval. The
// goroutine exits when ctx is cancelled or Stop is called. Passes that find
// the client offline or a sync already running are silently skipped.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.defaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.coordinator.SyncPendingOperations(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
