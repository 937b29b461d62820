// Package logging builds the application logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"airportmind/internal/core/model"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level.
// Unknown names resolve to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing to writer at the configured level.
func New(config model.LoggingConfig, writer io.Writer) zerolog.Logger {
	return zerolog.New(writer).
		Level(ParseLevel(config.Level)).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger on stderr.
func NewConsole(config model.LoggingConfig) zerolog.Logger {
	return New(config, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// NewFile returns a logger appending JSON lines to path, and a close function.
// When the file cannot be opened the logger discards everything.
func NewFile(config model.LoggingConfig, path string) (zerolog.Logger, func() error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() error { return nil }
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }
	}
	return New(config, file), file.Close
}
