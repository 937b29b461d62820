package animation

import (
	"time"

	"airportmind/internal/core/breathing"
)

// Cue describes how the breathing circle should look during a phase.
type Cue struct {
	Scale       float32
	IconOpacity float32
	Duration    time.Duration
}

// CueFor returns the visual cue for phase: the circle grows while
// inhaling, stays large while holding and shrinks back while exhaling.
func CueFor(phase breathing.Phase) Cue {
	duration := time.Duration(phase.Duration()) * time.Second
	switch phase {
	case breathing.PhaseExhale:
		return Cue{Scale: 1.0, IconOpacity: 1.0, Duration: duration}
	default:
		return Cue{Scale: 1.1, IconOpacity: 0.5, Duration: duration}
	}
}

// Label returns the phase name shown under the countdown.
func Label(phase breathing.Phase) string {
	switch phase {
	case breathing.PhaseInhale:
		return "Breathe in"
	case breathing.PhaseHold:
		return "Hold"
	case breathing.PhaseExhale:
		return "Breathe out"
	default:
		return ""
	}
}
