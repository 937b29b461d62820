// Package soundscape tracks which ambient track is playing and hands
// playback to a platform media player.
package soundscape

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"airportmind/internal/core/model"

	"github.com/rs/zerolog"
)

// ErrUnknownSound is returned when toggling a name missing from the catalog.
var ErrUnknownSound = errors.New("unknown sound")

// Player plays a single source at a time. Play returns a channel closed
// when playback of that source ends; a nil channel means it is never observed.
type Player interface {
	Play(ctx context.Context, source string) (<-chan struct{}, error)
	Stop() error
}

// Sound is one catalog entry.
type Sound struct {
	Name   string
	Source string
}

// Board is the sound selection state.
type Board struct {
	mu       sync.Mutex
	catalog  []Sound
	player   Player
	logger   zerolog.Logger
	selected string
	playing  bool
	onEnded  func(name string)

	// generation changes on every selection change so a stale exit is ignored.
	generation int
}

// NewBoard creates a board over the configured catalog.
func NewBoard(sounds []model.SoundConfig, player Player, logger zerolog.Logger) *Board {
	catalog := make([]Sound, 0, len(sounds))
	for _, sound := range sounds {
		if sound.Name == "" {
			continue
		}
		catalog = append(catalog, Sound{Name: sound.Name, Source: sound.Source})
	}
	return &Board{
		catalog: catalog,
		player:  player,
		logger:  logger.With().Str("component", "soundscape").Logger(),
	}
}

// Catalog returns the sounds in display order.
func (board *Board) Catalog() []Sound {
	return append([]Sound(nil), board.catalog...)
}

// SetOnEnded registers a callback for a track that stops without being
// toggled off, such as a stream that cannot be reached. It runs on the
// goroutine that observed the exit.
func (board *Board) SetOnEnded(handler func(name string)) {
	board.mu.Lock()
	board.onEnded = handler
	board.mu.Unlock()
}

// Toggle stops name if it is the playing track, otherwise switches to it.
func (board *Board) Toggle(ctx context.Context, name string) error {
	sound, ok := board.lookup(name)
	if !ok {
		return fmt.Errorf("toggle sound %q: %w", name, ErrUnknownSound)
	}

	board.mu.Lock()
	defer board.mu.Unlock()
	board.generation++

	if board.selected == name && board.playing {
		board.selected = ""
		board.playing = false
		if err := board.player.Stop(); err != nil {
			return fmt.Errorf("stop sound %q: %w", name, err)
		}
		board.logger.Debug().Str("sound", name).Msg("sound stopped")
		return nil
	}

	exited, err := board.player.Play(ctx, sound.Source)
	if err != nil {
		board.selected = ""
		board.playing = false
		return fmt.Errorf("play sound %q: %w", name, err)
	}
	board.selected = name
	board.playing = true
	if exited != nil {
		go board.watch(board.generation, name, exited)
	}
	board.logger.Debug().Str("sound", name).Msg("sound playing")
	return nil
}

func (board *Board) watch(generation int, name string, exited <-chan struct{}) {
	<-exited

	board.mu.Lock()
	if board.generation != generation || !board.playing {
		board.mu.Unlock()
		return
	}
	board.selected = ""
	board.playing = false
	handler := board.onEnded
	board.mu.Unlock()

	board.logger.Warn().Str("sound", name).Msg("sound ended unexpectedly")
	if handler != nil {
		handler(name)
	}
}

// StopAll silences the board.
func (board *Board) StopAll() error {
	board.mu.Lock()
	defer board.mu.Unlock()
	board.generation++
	if !board.playing {
		board.selected = ""
		return nil
	}
	board.selected = ""
	board.playing = false
	if err := board.player.Stop(); err != nil {
		return fmt.Errorf("stop sound: %w", err)
	}
	return nil
}

// State returns the selected track name and whether it is playing.
func (board *Board) State() (string, bool) {
	board.mu.Lock()
	defer board.mu.Unlock()
	return board.selected, board.playing
}

// IsPlaying reports whether name is the track currently playing.
func (board *Board) IsPlaying(name string) bool {
	board.mu.Lock()
	defer board.mu.Unlock()
	return board.playing && board.selected == name
}

func (board *Board) lookup(name string) (Sound, bool) {
	for _, sound := range board.catalog {
		if sound.Name == name {
			return sound, true
		}
	}
	return Sound{}, false
}
