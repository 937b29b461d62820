package animation

import "time"

// DefaultConfig returns the frame rate used by the breathing circle.
func DefaultConfig() Config {
	return Config{
		FrameInterval: time.Second / 30,
		RestScale:     1.0,
	}
}
