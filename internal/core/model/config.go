package model

import "time"

// BreathingConfig contains runtime settings for the breathing driver.
type BreathingConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
}

// SoundConfig names one ambient track and where to stream it from.
type SoundConfig struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Source string `mapstructure:"source" yaml:"source"`
}

// ChatConfig holds the scripted companion lines.
type ChatConfig struct {
	Greeting string `mapstructure:"greeting" yaml:"greeting"`
	Reply    string `mapstructure:"reply" yaml:"reply"`
}

// AnxietyConfig contains defaults for the self-rating slider.
type AnxietyConfig struct {
	DefaultLevel int `mapstructure:"default_level" yaml:"default_level"`
}

// WindowConfig defines the main window size.
type WindowConfig struct {
	Width  float32 `mapstructure:"width" yaml:"width"`
	Height float32 `mapstructure:"height" yaml:"height"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Config is the full application configuration.
type Config struct {
	Breathing BreathingConfig `mapstructure:"breathing" yaml:"breathing"`
	Sounds    []SoundConfig   `mapstructure:"sounds" yaml:"sounds"`
	Chat      ChatConfig      `mapstructure:"chat" yaml:"chat"`
	Anxiety   AnxietyConfig   `mapstructure:"anxiety" yaml:"anxiety"`
	Window    WindowConfig    `mapstructure:"window" yaml:"window"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Breathing: BreathingConfig{
			TickInterval: time.Second,
		},
		Sounds: []SoundConfig{
			{Name: "White Noise", Source: "https://cdn.pixabay.com/download/audio/2022/03/15/audio_c8b8a19583.mp3"},
			{Name: "Ocean Waves", Source: "https://cdn.pixabay.com/download/audio/2022/01/18/audio_d0a13f69d2.mp3"},
			{Name: "Rain Sounds", Source: "https://cdn.pixabay.com/download/audio/2022/03/15/audio_bf3a5ccf6d.mp3"},
			{Name: "Soft Piano", Source: "https://cdn.pixabay.com/download/audio/2022/03/15/audio_c8123c01ba.mp3"},
		},
		Chat: ChatConfig{
			Greeting: "Hi there! I'm here to help you have a peaceful journey. What's on your mind?",
			Reply:    "I understand how you're feeling. Take deep breaths and remember that you're safe. Would you like to try a breathing exercise?",
		},
		Anxiety: AnxietyConfig{
			DefaultLevel: 5,
		},
		Window: WindowConfig{
			Width:  960,
			Height: 720,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
