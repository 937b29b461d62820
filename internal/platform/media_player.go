package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// ErrPlaybackUnsupported indicates no external media player is installed.
var ErrPlaybackUnsupported = errors.New("audio playback unsupported")

type playerCommand struct {
	name string
	args []string
}

var defaultPlayers = []playerCommand{
	{name: "mpv", args: []string{"--no-video", "--really-quiet", "--loop-file=inf"}},
	{name: "ffplay", args: []string{"-nodisp", "-loglevel", "quiet", "-loop", "0"}},
	{name: "cvlc", args: []string{"--quiet", "--loop"}},
}

// MediaPlayer streams a source through the first installed command-line player.
type MediaPlayer struct {
	mu      sync.Mutex
	path    string
	args    []string
	cancel  context.CancelFunc
	exited  chan struct{}
	current string
}

// NewMediaPlayer returns a player backed by mpv, ffplay or cvlc.
func NewMediaPlayer() *MediaPlayer {
	return newMediaPlayer(defaultPlayers)
}

func newMediaPlayer(candidates []playerCommand) *MediaPlayer {
	for _, candidate := range candidates {
		path, err := exec.LookPath(candidate.name)
		if err != nil {
			continue
		}
		return &MediaPlayer{path: path, args: candidate.args}
	}
	return &MediaPlayer{}
}

// Available reports whether a player binary was found.
func (player *MediaPlayer) Available() bool {
	return player.path != ""
}

// Play replaces any current track with source. The returned channel is
// closed when the player process exits, whether stopped or on its own.
func (player *MediaPlayer) Play(ctx context.Context, source string) (<-chan struct{}, error) {
	player.mu.Lock()
	defer player.mu.Unlock()

	if player.path == "" {
		return nil, ErrPlaybackUnsupported
	}
	player.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	args := append(append([]string(nil), player.args...), source)
	command := exec.CommandContext(runCtx, player.path, args...)
	if err := command.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", player.path, err)
	}

	exited := make(chan struct{})
	player.cancel = cancel
	player.exited = exited
	player.current = source
	go player.reap(command, exited)
	return exited, nil
}

// reap waits for the process and forgets the track if it ended on its own.
// exited is closed before taking the lock so stopLocked can wait on it.
func (player *MediaPlayer) reap(command *exec.Cmd, exited chan struct{}) {
	_ = command.Wait()
	close(exited)

	player.mu.Lock()
	defer player.mu.Unlock()
	if player.exited != exited {
		return
	}
	player.cancel()
	player.cancel = nil
	player.exited = nil
	player.current = ""
}

// Stop terminates the current track, if any.
func (player *MediaPlayer) Stop() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.stopLocked()
	return nil
}

// Current returns the source being played.
func (player *MediaPlayer) Current() string {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.current
}

func (player *MediaPlayer) stopLocked() {
	if player.cancel == nil {
		return
	}
	player.cancel()
	<-player.exited
	player.cancel = nil
	player.exited = nil
	player.current = ""
}
