package breathing

// Cycle is the observable state of a breathing session.
type Cycle struct {
	Phase            Phase
	SecondsRemaining int
	Active           bool
}

// InitialCycle returns the state of a freshly opened guide.
func InitialCycle() Cycle {
	return Cycle{
		Phase:            PhaseInhale,
		SecondsRemaining: PhaseInhale.Duration(),
	}
}

// Advance applies one tick to cycle and returns the result.
// An inactive cycle is returned unchanged.
func Advance(cycle Cycle) Cycle {
	if !cycle.Active {
		return cycle
	}
	if cycle.SecondsRemaining > 1 {
		cycle.SecondsRemaining--
		return cycle
	}
	cycle.Phase = cycle.Phase.Next()
	cycle.SecondsRemaining = cycle.Phase.Duration()
	return cycle
}

// Progress returns how far the current phase has elapsed, in [0, 1).
func (cycle Cycle) Progress() float64 {
	total := cycle.Phase.Duration()
	if total <= 0 {
		return 0
	}
	elapsed := total - cycle.SecondsRemaining
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}
