package breathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerStartPauseIdempotent(t *testing.T) {
	timer := NewTimer()
	events := timer.Subscribe(8)

	timer.Start()
	timer.Start()
	require.True(t, timer.Snapshot().Active)

	timer.Pause()
	timer.Pause()
	require.False(t, timer.Snapshot().Active)

	// Only real transitions are announced.
	assert.Len(t, events, 2)
}

func TestTimerTickWhilePausedDoesNothing(t *testing.T) {
	timer := NewTimer()
	for i := 0; i < 10; i++ {
		timer.Tick()
	}
	assert.Equal(t, InitialCycle(), timer.Snapshot())
}

func TestTimerPauseResumePreservesPosition(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	for i := 0; i < 6; i++ {
		timer.Tick()
	}
	paused := timer.Snapshot()
	require.Equal(t, PhaseHold, paused.Phase)
	require.Equal(t, 5, paused.SecondsRemaining)

	timer.Pause()
	for i := 0; i < 50; i++ {
		timer.Tick()
	}
	timer.Start()

	resumed := timer.Snapshot()
	assert.Equal(t, paused.Phase, resumed.Phase)
	assert.Equal(t, paused.SecondsRemaining, resumed.SecondsRemaining)
	assert.True(t, resumed.Active)
}

func TestTimerToggle(t *testing.T) {
	timer := NewTimer()
	assert.True(t, timer.Toggle())
	assert.True(t, timer.Snapshot().Active)
	assert.False(t, timer.Toggle())
	assert.False(t, timer.Snapshot().Active)
}

func TestTimerResetFromAnyState(t *testing.T) {
	for ticks := 0; ticks < CycleSeconds(); ticks++ {
		timer := NewTimer()
		timer.Start()
		for i := 0; i < ticks; i++ {
			timer.Tick()
		}
		timer.Reset()
		assert.Equal(t, Cycle{Phase: PhaseInhale, SecondsRemaining: 4}, timer.Snapshot())
	}
}

func TestTimerFullLoop(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	for i := 0; i < 19; i++ {
		timer.Tick()
	}
	assert.Equal(t, Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true}, timer.Snapshot())
}

func TestTimerEvents(t *testing.T) {
	timer := NewTimer()
	events := timer.Subscribe(16)

	timer.Start()
	require.Equal(t, EventStateChange, (<-events).Type)

	for i := 0; i < 3; i++ {
		timer.Tick()
		event := <-events
		require.Equal(t, EventTick, event.Type)
		require.Equal(t, PhaseInhale, event.Cycle.Phase)
	}

	timer.Tick()
	event := <-events
	assert.Equal(t, EventPhaseChange, event.Type)
	assert.Equal(t, Cycle{Phase: PhaseHold, SecondsRemaining: 7, Active: true}, event.Cycle)

	timer.Reset()
	event = <-events
	assert.Equal(t, EventReset, event.Type)
	assert.Equal(t, InitialCycle(), event.Cycle)
}

func TestTimerSlowObserverDoesNotBlock(t *testing.T) {
	timer := NewTimer()
	_ = timer.Subscribe(1)
	timer.Start()
	for i := 0; i < 100; i++ {
		timer.Tick()
	}
	assert.True(t, timer.Snapshot().Active)
}

func TestTimerUnsubscribeClosesChannel(t *testing.T) {
	timer := NewTimer()
	events := timer.Subscribe(1)
	timer.Unsubscribe(events)

	_, open := <-events
	assert.False(t, open)

	// Emitting after unsubscribe must not panic on the closed channel.
	timer.Start()
	timer.Tick()
}
