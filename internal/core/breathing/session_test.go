package breathing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

func TestSessionDrivesActiveTimer(t *testing.T) {
	timer := NewTimer()
	session := Open(context.Background(), timer, Config{TickInterval: testInterval})
	defer session.Close()

	timer.Start()
	require.Eventually(t, func() bool {
		return timer.Snapshot().Phase == PhaseHold
	}, time.Second, testInterval)
}

func TestSessionDoesNotAdvancePausedTimer(t *testing.T) {
	timer := NewTimer()
	session := Open(context.Background(), timer, Config{TickInterval: testInterval})
	defer session.Close()

	time.Sleep(10 * testInterval)
	assert.Equal(t, InitialCycle(), timer.Snapshot())
}

func TestSessionCloseReleasesTickerAndResets(t *testing.T) {
	timer := NewTimer()
	session := Open(context.Background(), timer, Config{TickInterval: testInterval})

	timer.Start()
	require.Eventually(t, func() bool {
		return timer.Snapshot().SecondsRemaining < 4 || timer.Snapshot().Phase != PhaseInhale
	}, time.Second, testInterval)

	session.Close()
	select {
	case <-session.Done():
	default:
		t.Fatal("session should be released after Close")
	}
	require.Equal(t, InitialCycle(), timer.Snapshot())

	// A restarted timer with no session must not move.
	timer.Start()
	time.Sleep(10 * testInterval)
	assert.Equal(t, Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true}, timer.Snapshot())

	session.Close()
}

func TestSessionReleasedOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timer := NewTimer()
	session := Open(ctx, timer, Config{TickInterval: testInterval})

	cancel()
	select {
	case <-session.Done():
	case <-time.After(time.Second):
		t.Fatal("session should be released when context is cancelled")
	}

	timer.Start()
	time.Sleep(10 * testInterval)
	assert.Equal(t, 4, timer.Snapshot().SecondsRemaining)
}

func TestOpenDefaultsInterval(t *testing.T) {
	timer := NewTimer()
	session := Open(context.Background(), timer, Config{})
	defer session.Close()
	assert.Same(t, timer, session.Timer())
}
