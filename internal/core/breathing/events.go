package breathing

import "time"

// EventType defines the type of timer event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventStateChange EventType = "state_change"
	EventReset       EventType = "reset"
)

// Event represents a timer update for observers.
type Event struct {
	Type  EventType
	Cycle Cycle
	At    time.Time
}
