// Package mood holds the mood check-in selection.
package mood

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownMood is returned when selecting a mood that is not offered.
var ErrUnknownMood = errors.New("unknown mood")

// Mood is a self-reported feeling.
type Mood string

const (
	Anxious Mood = "anxious"
	Calm    Mood = "calm"
	Excited Mood = "excited"
	Tired   Mood = "tired"
)

var options = []Mood{Anxious, Calm, Excited, Tired}

// Options returns the selectable moods in display order.
func Options() []Mood {
	return append([]Mood(nil), options...)
}

// Valid reports whether mood is one of Options.
func (mood Mood) Valid() bool {
	for _, option := range options {
		if option == mood {
			return true
		}
	}
	return false
}

// Selector remembers the most recent check-in.
type Selector struct {
	mu      sync.Mutex
	current Mood
}

// NewSelector creates a selector with no mood chosen.
func NewSelector() *Selector {
	return &Selector{}
}

// Select records mood as the current one.
func (selector *Selector) Select(mood Mood) error {
	if !mood.Valid() {
		return fmt.Errorf("select mood %q: %w", mood, ErrUnknownMood)
	}
	selector.mu.Lock()
	selector.current = mood
	selector.mu.Unlock()
	return nil
}

// Current returns the selected mood and whether one is set.
func (selector *Selector) Current() (Mood, bool) {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	return selector.current, selector.current != ""
}

// Clear forgets the selection.
func (selector *Selector) Clear() {
	selector.mu.Lock()
	selector.current = ""
	selector.mu.Unlock()
}
