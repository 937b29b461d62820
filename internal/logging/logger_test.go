package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"airportmind/internal/core/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"chatty":  zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger := New(model.LoggingConfig{Level: "warn"}, &buffer)

	logger.Info().Msg("hidden")
	logger.Warn().Str("component", "test").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "shown", record["message"])
	assert.Equal(t, "test", record["component"])
	assert.Contains(t, record, "time")
}

func TestNewFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breathe.log")
	logger, closeFn := NewFile(model.LoggingConfig{Level: "info"}, path)
	logger.Info().Msg("opened")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "opened")
}
