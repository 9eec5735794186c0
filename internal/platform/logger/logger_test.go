package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/abhishk002/mock-employee-service/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "warn", Format: config.LogFormatJSON}, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(config.LogConfig{Level: "info", Format: config.LogFormatConsole}, &buf)
	require.NoError(t, err)

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(config.LogConfig{Level: "loud"}, nil)
	require.Error(t, err)
}
