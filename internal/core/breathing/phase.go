package breathing

// Phase is one stage of the 4-7-8 breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
)

// Phases lists every phase in cycle order.
var Phases = []Phase{PhaseInhale, PhaseHold, PhaseExhale}

// Duration returns the fixed length of the phase in seconds.
func (phase Phase) Duration() int {
	switch phase {
	case PhaseHold:
		return 7
	case PhaseExhale:
		return 8
	default:
		return 4
	}
}

// Next returns the phase that follows in the cycle.
func (phase Phase) Next() Phase {
	switch phase {
	case PhaseInhale:
		return PhaseHold
	case PhaseHold:
		return PhaseExhale
	default:
		return PhaseInhale
	}
}

// Valid reports whether phase is one of the three known phases.
func (phase Phase) Valid() bool {
	return phase >= PhaseInhale && phase <= PhaseExhale
}

func (phase Phase) String() string {
	switch phase {
	case PhaseInhale:
		return "inhale"
	case PhaseHold:
		return "hold"
	case PhaseExhale:
		return "exhale"
	default:
		return "unknown"
	}
}

// CycleSeconds is the length of one full inhale-hold-exhale loop.
func CycleSeconds() int {
	total := 0
	for _, phase := range Phases {
		total += phase.Duration()
	}
	return total
}
