package breathing

import (
	"context"
	"sync"
	"time"
)

// Config contains runtime options for the periodic driver.
type Config struct {
	TickInterval time.Duration
}

// Session owns the periodic source that drives a Timer while a guide is open.
type Session struct {
	timer  *Timer
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Open acquires a ticker that forwards every interval to timer.Tick.
// The ticker runs until Close is called or ctx is cancelled.
func Open(ctx context.Context, timer *Timer, config Config) *Session {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}

	runCtx, cancel := context.WithCancel(ctx)
	session := &Session{
		timer:  timer,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go session.run(runCtx, config.TickInterval)
	return session
}

// Timer returns the timer driven by this session.
func (session *Session) Timer() *Timer {
	return session.timer
}

// Done is closed once the ticker has been released.
func (session *Session) Done() <-chan struct{} {
	return session.done
}

// Close releases the ticker and resets the timer to its initial state.
// No tick reaches the timer after Close returns. Safe to call twice.
func (session *Session) Close() {
	session.once.Do(func() {
		session.cancel()
		<-session.done
		session.timer.Reset()
	})
}

func (session *Session) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(session.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Close may race the ticker; prefer cancellation.
			if ctx.Err() != nil {
				return
			}
			session.timer.Tick()
		}
	}
}
