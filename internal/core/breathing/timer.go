// Package breathing implements the 4-7-8 guided breathing timer.
//
// The phase logic is the pure function Advance. Timer wraps it with
// start/pause/reset controls and observer channels, and Session supplies
// the one-second driver as a scoped resource.
package breathing

import (
	"sync"
	"time"
)

// Timer is a state machine that counts down the breathing phases.
type Timer struct {
	mu     sync.Mutex
	cycle  Cycle
	events []chan Event
	now    func() time.Time
}

// NewTimer creates a Timer in its initial, inactive state.
func NewTimer() *Timer {
	return &Timer{
		cycle: InitialCycle(),
		now:   time.Now,
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes an observer channel returned by Subscribe.
func (timer *Timer) Unsubscribe(observer <-chan Event) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	for index, ch := range timer.events {
		if ch == observer {
			timer.events = append(timer.events[:index], timer.events[index+1:]...)
			close(ch)
			return
		}
	}
}

// Start lets time pass. Calling it on an active timer does nothing.
func (timer *Timer) Start() {
	timer.setActive(true)
}

// Pause freezes the countdown, keeping phase and remaining seconds.
func (timer *Timer) Pause() {
	timer.setActive(false)
}

// Toggle starts a paused timer or pauses a running one and reports
// whether the timer is now active.
func (timer *Timer) Toggle() bool {
	timer.mu.Lock()
	active := !timer.cycle.Active
	timer.cycle.Active = active
	timer.emitLocked(EventStateChange)
	timer.mu.Unlock()
	return active
}

// Tick applies one second of countdown. It is a no-op while paused.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.cycle.Active {
		return
	}

	previous := timer.cycle.Phase
	timer.cycle = Advance(timer.cycle)
	if timer.cycle.Phase != previous {
		timer.emitLocked(EventPhaseChange)
		return
	}
	timer.emitLocked(EventTick)
}

// Reset returns the timer to (inhale, 4s, inactive).
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.cycle = InitialCycle()
	timer.emitLocked(EventReset)
	timer.mu.Unlock()
}

// Snapshot returns the current state without modifying it.
func (timer *Timer) Snapshot() Cycle {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.cycle
}

func (timer *Timer) setActive(active bool) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.cycle.Active == active {
		return
	}
	timer.cycle.Active = active
	timer.emitLocked(EventStateChange)
}

func (timer *Timer) emitLocked(eventType EventType) {
	event := Event{
		Type:  eventType,
		Cycle: timer.cycle,
		At:    timer.now(),
	}
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
