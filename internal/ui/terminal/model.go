// Package terminal renders the breathing guide in a terminal.
package terminal

import (
	"fmt"
	"strings"

	"airportmind/internal/core/breathing"
	"airportmind/internal/ui/animation"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxBarWidth = 48

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type cycleMsg breathing.Event

type eventsClosedMsg struct{}

// Model is the Bubble Tea model of the terminal breathing guide.
// It never ticks the timer itself: ticks arrive from the session
// driving the timer and are observed through events.
type Model struct {
	timer    *breathing.Timer
	events   <-chan breathing.Event
	cycle    breathing.Cycle
	bar      progress.Model
	keys     keyMap
	width    int
	quitting bool
}

// NewModel creates a model observing timer through events.
func NewModel(timer *breathing.Timer, events <-chan breathing.Event) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return Model{
		timer:  timer,
		events: events,
		cycle:  timer.Snapshot(),
		bar:    bar,
		keys:   defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan breathing.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return cycleMsg(event)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.timer.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
		}
		m.cycle = m.timer.Snapshot()
		return m, nil

	case cycleMsg:
		m.cycle = m.timer.Snapshot()
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := phaseStyle.Render(animation.Label(m.cycle.Phase))
	if !m.cycle.Active {
		status = lipgloss.JoinHorizontal(lipgloss.Center, status, "  ", pausedStyle.Render("paused"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("4-7-8 Breathing"),
		countStyle.Render(fmt.Sprintf("%d", m.cycle.SecondsRemaining)),
		status,
		"",
		m.bar.ViewAs(breathFill(m.cycle)),
		helpStyle.Render(m.helpLine()),
	)
	return frameStyle.Render(body)
}

func (m Model) helpLine() string {
	bindings := []key.Binding{m.keys.Toggle, m.keys.Reset, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " • ")
}

// breathFill mirrors the circle: it fills while inhaling, stays full
// while holding and drains while exhaling.
func breathFill(cycle breathing.Cycle) float64 {
	total := float64(cycle.Phase.Duration())
	elapsed := total - float64(cycle.SecondsRemaining) + 1
	fraction := elapsed / total
	if fraction > 1 {
		fraction = 1
	}
	if !cycle.Active && cycle == breathing.InitialCycle() {
		fraction = 0
	}
	switch cycle.Phase {
	case breathing.PhaseHold:
		return 1
	case breathing.PhaseExhale:
		return 1 - fraction
	default:
		return fraction
	}
}

func barWidth(terminalWidth int) int {
	width := terminalWidth - 16
	if width > maxBarWidth {
		return maxBarWidth
	}
	if width < 10 {
		return 10
	}
	return width
}
