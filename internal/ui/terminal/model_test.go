package terminal

import (
	"strings"
	"testing"

	"airportmind/internal/core/breathing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToggleAndReset(t *testing.T) {
	timer := breathing.NewTimer()
	model := NewModel(timer, timer.Subscribe(4))

	updated, _ := model.Update(runeKey('p'))
	model = updated.(Model)
	assert.True(t, timer.Snapshot().Active)
	assert.True(t, model.cycle.Active)

	timer.Tick()
	updated, cmd := model.Update(cycleMsg{Type: breathing.EventTick})
	model = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 3, model.cycle.SecondsRemaining)

	updated, _ = model.Update(runeKey('r'))
	model = updated.(Model)
	assert.Equal(t, breathing.InitialCycle(), model.cycle)
}

func TestQuit(t *testing.T) {
	timer := breathing.NewTimer()
	model := NewModel(timer, timer.Subscribe(1))

	updated, cmd := model.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestWaitForEventClosed(t *testing.T) {
	timer := breathing.NewTimer()
	events := timer.Subscribe(1)
	timer.Unsubscribe(events)

	msg := waitForEvent(events)()
	assert.IsType(t, eventsClosedMsg{}, msg)
}

func TestViewShowsPhaseAndCount(t *testing.T) {
	timer := breathing.NewTimer()
	model := NewModel(timer, timer.Subscribe(1))

	view := model.View()
	assert.Contains(t, view, "Breathe in")
	assert.Contains(t, view, "4")
	assert.Contains(t, view, "paused")

	timer.Start()
	for i := 0; i < 4; i++ {
		timer.Tick()
	}
	updated, _ := model.Update(cycleMsg{Type: breathing.EventPhaseChange})
	view = updated.View()
	assert.Contains(t, view, "Hold")
	assert.Contains(t, view, "7")
	assert.False(t, strings.Contains(view, "paused"))
}

func TestBreathFill(t *testing.T) {
	assert.Equal(t, 0.0, breathFill(breathing.InitialCycle()))
	assert.Equal(t, 0.25, breathFill(breathing.Cycle{Phase: breathing.PhaseInhale, SecondsRemaining: 4, Active: true}))
	assert.Equal(t, 1.0, breathFill(breathing.Cycle{Phase: breathing.PhaseInhale, SecondsRemaining: 1, Active: true}))
	assert.Equal(t, 1.0, breathFill(breathing.Cycle{Phase: breathing.PhaseHold, SecondsRemaining: 3, Active: true}))
	assert.Equal(t, 0.0, breathFill(breathing.Cycle{Phase: breathing.PhaseExhale, SecondsRemaining: 1, Active: true}))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, maxBarWidth, barWidth(200))
	assert.Equal(t, 10, barWidth(12))
	assert.Equal(t, 24, barWidth(40))
}
