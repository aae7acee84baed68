package logging

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

func TestNewWritesJSON(t *testing.T) {
	t.Setenv(envDebug, "")

	var buf bytes.Buffer

	logger, closer, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("session recorded", slog.Int("duration", 25))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session recorded", entry["msg"])
	assert.InDelta(t, 25, entry["duration"], 0)
}

func TestDebugFromEnv(t *testing.T) {
	t.Setenv(envDebug, "1")

	var buf bytes.Buffer

	logger, _, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.Debug("tick")

	assert.Contains(t, buf.String(), `"msg":"tick"`)
}

func TestNewCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "locktfin.log")

	logger, closer, err := New(Options{Path: path})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}
