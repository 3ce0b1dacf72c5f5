package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestInitHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := Init(Options{Level: "warn", Format: "text", Stderr: &buf})
	require.NoError(t, err)
	defer log.Close()

	log.Info("hidden")
	log.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestInitDebugOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := Init(Options{Level: "error", Debug: true, Stderr: &buf})
	require.NoError(t, err)

	log.Debug("details")
	assert.Contains(t, buf.String(), "msg=details")
	assert.Contains(t, buf.String(), "source=")
}

func TestInitJSONToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "preflight.log")

	log, err := Init(Options{Level: "info", Format: "json", File: path, Stderr: &buf})
	require.NoError(t, err)
	log.Info("report written", "args", 3)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "report written", entry["msg"])
	assert.EqualValues(t, 3, entry["args"])
	assert.Equal(t, string(data), buf.String())
}

func TestDiscardAndNilClose(t *testing.T) {
	Discard().Info("nothing")
	assert.NoError(t, Discard().Close())

	var l *Logger
	assert.NoError(t, l.Close())
}
