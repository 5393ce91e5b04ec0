package workers

import (
	"context"
	"time"

	"github.com/staffly/offline-sync/internal/connectivity"
	"github.com/staffly/offline-sync/internal/service"
)

// Workers aggregates background workers and launches them together.
type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// connectivityProbe periodically verifies the backend answers and feeds the
// result into the connectivity monitor, correcting stale platform signals.
type connectivityProbe struct {
	monitor  *connectivity.Monitor
	probe    func(context.Context) error
	interval time.Duration
}

func NewConnectivityProbe(monitor *connectivity.Monitor, probe func(context.Context) error, interval time.Duration) Worker {
	return &connectivityProbe{monitor: monitor, probe: probe, interval: interval}
}

func (w *connectivityProbe) Run(ctx context.Context) {
	go w.monitor.StartProbing(ctx, w.probe, w.interval)
}

// coordinatorLoop drives the offline coordinator's event loop: connectivity
// transitions and the auto-sync timer.
type coordinatorLoop struct {
	coordinator service.OfflineCoordinator
}

func NewCoordinatorLoop(coordinator service.OfflineCoordinator) Worker {
	return &coordinatorLoop{coordinator: coordinator}
}

func (w *coordinatorLoop) Run(ctx context.Context) {
	go w.coordinator.Run(ctx)
}
