// Package connectivity abstracts the network-availability signal behind an
// injected observer interface, so the offline coordinator can be driven by
// simulated transitions in tests instead of platform events.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/staffly/offline-sync/internal/logger"
)

//go:generate mockgen -source=connectivity.go -destination=../mock/connectivity_mock.go -package=mock

// Source exposes the current connectivity state and a stream of transitions.
// Platform events are known to be unreliable and stale; consumers that need a
// trustworthy answer before acting (e.g. a manual full sync) should combine
// the Source with an active connectivity probe.
type Source interface {
	// Online returns the last observed connectivity state.
	Online() bool

	// Events returns the transition stream: true for online, false for
	// offline. Only state changes are delivered.
	Events() <-chan bool
}

// Monitor is the canonical [Source] implementation. State is set explicitly
// via Set — by platform glue code, by a probe loop (StartProbing), or by
// tests.
type Monitor struct {
	mu     sync.Mutex
	online bool
	events chan bool

	logger *logger.Logger
}

// NewMonitor creates a Monitor with the given initial state. The event
// channel is buffered so that a slow consumer cannot block a Set call from
// platform glue.
func NewMonitor(initialOnline bool, log *logger.Logger) *Monitor {
	return &Monitor{
		online: initialOnline,
		events: make(chan bool, 16),
		logger: log,
	}
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Monitor) Events() <-chan bool {
	return m.events
}

// Set records a new connectivity state. Repeated reports of the same state
// are absorbed; only transitions are published to the event stream.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	m.mu.Unlock()

	m.logger.Debug().Bool("online", online).Msg("connectivity transition")

	select {
	case m.events <- online:
	default:
		// Consumer is not draining; the state is still readable via Online.
	}
}

// StartProbing runs probe every interval and feeds the result into Set until
// ctx is cancelled. probe should be a lightweight authenticated health call.
func (m *Monitor) StartProbing(ctx context.Context, probe func(context.Context) error, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Set(probe(ctx) == nil)
		}
	}
}
