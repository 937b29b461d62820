package breathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceN(cycle Cycle, ticks int) Cycle {
	for i := 0; i < ticks; i++ {
		cycle = Advance(cycle)
	}
	return cycle
}

func TestPhaseTable(t *testing.T) {
	tests := []struct {
		phase    Phase
		duration int
		next     Phase
		name     string
	}{
		{PhaseInhale, 4, PhaseHold, "inhale"},
		{PhaseHold, 7, PhaseExhale, "hold"},
		{PhaseExhale, 8, PhaseInhale, "exhale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.duration, tt.phase.Duration())
			assert.Equal(t, tt.next, tt.phase.Next())
			assert.Equal(t, tt.name, tt.phase.String())
			assert.True(t, tt.phase.Valid())
		})
	}
	assert.Equal(t, 19, CycleSeconds())
	assert.False(t, Phase(7).Valid())
}

func TestInitialCycle(t *testing.T) {
	assert.Equal(t, Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: false}, InitialCycle())
}

func TestAdvanceTransitions(t *testing.T) {
	tests := []struct {
		name  string
		start Cycle
		ticks int
		want  Cycle
	}{
		{
			name:  "inhale to hold on fourth tick",
			start: Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true},
			ticks: 4,
			want:  Cycle{Phase: PhaseHold, SecondsRemaining: 7, Active: true},
		},
		{
			name:  "hold to exhale on seventh tick",
			start: Cycle{Phase: PhaseHold, SecondsRemaining: 7, Active: true},
			ticks: 7,
			want:  Cycle{Phase: PhaseExhale, SecondsRemaining: 8, Active: true},
		},
		{
			name:  "exhale wraps to inhale on eighth tick",
			start: Cycle{Phase: PhaseExhale, SecondsRemaining: 8, Active: true},
			ticks: 8,
			want:  Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true},
		},
		{
			name:  "single decrement keeps phase",
			start: Cycle{Phase: PhaseHold, SecondsRemaining: 5, Active: true},
			ticks: 1,
			want:  Cycle{Phase: PhaseHold, SecondsRemaining: 4, Active: true},
		},
		{
			name:  "full loop returns to start",
			start: Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true},
			ticks: 19,
			want:  Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, advanceN(tt.start, tt.ticks))
		})
	}
}

func TestAdvanceTransitionHappensOnlyAtLastSecond(t *testing.T) {
	cycle := Cycle{Phase: PhaseInhale, SecondsRemaining: 4, Active: true}
	cycle = advanceN(cycle, 3)
	require.Equal(t, PhaseInhale, cycle.Phase)
	require.Equal(t, 1, cycle.SecondsRemaining)

	cycle = Advance(cycle)
	assert.Equal(t, PhaseHold, cycle.Phase)
	assert.Equal(t, 7, cycle.SecondsRemaining)
}

func TestAdvanceInactiveIsNoop(t *testing.T) {
	for _, phase := range Phases {
		for remaining := 1; remaining <= phase.Duration(); remaining++ {
			cycle := Cycle{Phase: phase, SecondsRemaining: remaining}
			assert.Equal(t, cycle, advanceN(cycle, 25))
		}
	}
}

func TestAdvanceKeepsInvariants(t *testing.T) {
	cycle := InitialCycle()
	cycle.Active = true
	for i := 0; i < 3*CycleSeconds(); i++ {
		cycle = Advance(cycle)
		require.True(t, cycle.Phase.Valid())
		require.GreaterOrEqual(t, cycle.SecondsRemaining, 1)
		require.LessOrEqual(t, cycle.SecondsRemaining, cycle.Phase.Duration())
	}
}

func TestCycleProgress(t *testing.T) {
	assert.InDelta(t, 0.0, Cycle{Phase: PhaseInhale, SecondsRemaining: 4}.Progress(), 1e-9)
	assert.InDelta(t, 0.75, Cycle{Phase: PhaseInhale, SecondsRemaining: 1}.Progress(), 1e-9)
	assert.InDelta(t, 0.5, Cycle{Phase: PhaseExhale, SecondsRemaining: 4}.Progress(), 1e-9)
}
