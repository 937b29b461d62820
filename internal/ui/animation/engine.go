package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	FrameInterval time.Duration
	RestScale     float32
}

// Engine tweens the breathing circle scale.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(scale float32)
	current float32
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates an engine that reports each frame to update.
func New(config Config, update func(scale float32)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	if config.RestScale <= 0 {
		config.RestScale = DefaultConfig().RestScale
	}
	return &Engine{
		config:  config,
		update:  update,
		current: config.RestScale,
	}
}

// Animate moves the scale from its current value to target over duration,
// replacing any animation already running.
func (engine *Engine) Animate(ctx context.Context, target float32, duration time.Duration) {
	engine.Stop()

	engine.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	from := engine.current
	engine.mu.Unlock()

	go func() {
		defer close(done)
		engine.run(runCtx, from, target, duration)
	}()
}

// Rest stops any animation and snaps back to the rest scale.
func (engine *Engine) Rest() {
	engine.Stop()
	engine.setCurrent(engine.config.RestScale)
	engine.update(engine.config.RestScale)
}

// Stop cancels the running animation and waits for it to finish.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel := engine.cancel
	done := engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Scale returns the most recently rendered scale.
func (engine *Engine) Scale() float32 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.current
}

func (engine *Engine) run(ctx context.Context, from, target float32, duration time.Duration) {
	if duration <= 0 {
		engine.setCurrent(target)
		engine.update(target)
		return
	}

	ticker := time.NewTicker(engine.config.FrameInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			progress := float32(now.Sub(start)) / float32(duration)
			if progress >= 1 {
				engine.setCurrent(target)
				engine.update(target)
				return
			}
			scale := from + (target-from)*easeInOut(progress)
			engine.setCurrent(scale)
			engine.update(scale)
		}
	}
}

func (engine *Engine) setCurrent(scale float32) {
	engine.mu.Lock()
	engine.current = scale
	engine.mu.Unlock()
}

func easeInOut(progress float32) float32 {
	if progress < 0.5 {
		return 2 * progress * progress
	}
	return 1 - 2*(1-progress)*(1-progress)
}
