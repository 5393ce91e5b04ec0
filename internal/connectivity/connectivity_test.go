package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/offline-sync/internal/logger"
)

func TestMonitor_InitialState(t *testing.T) {
	m := NewMonitor(true, logger.Nop())
	assert.True(t, m.Online())

	m = NewMonitor(false, logger.Nop())
	assert.False(t, m.Online())
}

func TestMonitor_PublishesOnlyTransitions(t *testing.T) {
	m := NewMonitor(true, logger.Nop())

	m.Set(true) // no transition
	m.Set(false)
	m.Set(false) // no transition
	m.Set(true)

	var got []bool
	for {
		select {
		case v := <-m.Events():
			got = append(got, v)
			continue
		default:
		}
		break
	}

	assert.Equal(t, []bool{false, true}, got)
}

func TestMonitor_SetNeverBlocks(t *testing.T) {
	m := NewMonitor(false, logger.Nop())

	// Nobody drains the channel; flapping must still return promptly.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			m.Set(i%2 == 0)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Set blocked on a full event channel")
	}
}

func TestMonitor_StartProbing(t *testing.T) {
	m := NewMonitor(true, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var healthy atomic.Bool
	probe := func(context.Context) error {
		if healthy.Load() {
			return nil
		}
		return errors.New("unreachable")
	}

	go m.StartProbing(ctx, probe, 5*time.Millisecond)

	require.Eventually(t, func() bool { return !m.Online() }, time.Second, time.Millisecond)

	healthy.Store(true)
	require.Eventually(t, m.Online, time.Second, time.Millisecond)
}
