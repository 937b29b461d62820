// Package anxiety keeps the self-rated anxiety log.
package anxiety

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	MinLevel     = 1
	MaxLevel     = 10
	DefaultLevel = 5
)

// ErrLevelOutOfRange is returned for ratings outside MinLevel..MaxLevel.
var ErrLevelOutOfRange = errors.New("anxiety level out of range")

// Entry is one logged rating.
type Entry struct {
	ID    string
	Level int
	At    time.Time
}

// Clock formats the entry time the way the log displays it.
func (entry Entry) Clock() string {
	return entry.At.Format("15:04:05")
}

// Tracker holds the current rating and the log of recorded ones.
type Tracker struct {
	mu      sync.Mutex
	level   int
	history []Entry
	now     func() time.Time
}

// NewTracker creates a tracker with the slider at level.
// Out-of-range values fall back to DefaultLevel.
func NewTracker(level int) *Tracker {
	if !inRange(level) {
		level = DefaultLevel
	}
	return &Tracker{level: level, now: time.Now}
}

// SetLevel moves the slider.
func (tracker *Tracker) SetLevel(level int) error {
	if !inRange(level) {
		return fmt.Errorf("set level %d: %w", level, ErrLevelOutOfRange)
	}
	tracker.mu.Lock()
	tracker.level = level
	tracker.mu.Unlock()
	return nil
}

// Level returns the slider value.
func (tracker *Tracker) Level() int {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.level
}

// Record appends the current level to the log.
func (tracker *Tracker) Record() Entry {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	entry := Entry{
		ID:    uuid.NewString(),
		Level: tracker.level,
		At:    tracker.now(),
	}
	tracker.history = append(tracker.history, entry)
	return entry
}

// History returns logged entries, oldest first.
func (tracker *Tracker) History() []Entry {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return append([]Entry(nil), tracker.history...)
}

func inRange(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
