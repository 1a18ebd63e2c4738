package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postdeck/internal/config"
)

func setupStateDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("POSTDECK_STATE_DIR", dir)
	t.Setenv("POSTDECK_CONFIG_PATH", filepath.Join(dir, "missing.toml"))
	config.Load()
	return dir
}

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})

	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, logger)
	assert.NoError(t, logger.Shutdown())
}

func TestInitWritesJSONEntries(t *testing.T) {
	dir := setupStateDir(t)

	logger, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 5, Command: "test", PID: 123})
	require.NoError(t, err)

	logger.Info("hello", "key", "value")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "postdeck_")
	assert.Contains(t, entries[0].Name(), "PID123")

	data, err := os.ReadFile(filepath.Join(dir, "logs", entries[0].Name()))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "test", entry["command"])
}

func TestWithAddsBaseFields(t *testing.T) {
	dir := setupStateDir(t)

	logger, err := Init(Config{Enabled: true, Level: "info", MaxFiles: 5, Command: "test", PID: 1})
	require.NoError(t, err)

	child := logger.With("page", 2)
	child.Info("page view updated")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, "logs", entries[0].Name()))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, float64(2), entry["page"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  clog.Level
	}{
		{"debug", "debug", clog.DebugLevel},
		{"info", "info", clog.InfoLevel},
		{"warn", "warn", clog.WarnLevel},
		{"warning alias", "warning", clog.WarnLevel},
		{"error", "error", clog.ErrorLevel},
		{"unknown falls back to info", "loud", clog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, fmt.Sprintf("postdeck_2026010%d_000000_PID1_test.log", i))
		require.NoError(t, os.WriteFile(name, []byte("{}"), 0600))
	}
	// Unrelated files are never rotated away.
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0600))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs, others int
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			logs++
		} else {
			others++
		}
	}
	assert.Equal(t, 2, logs)
	assert.Equal(t, 1, others)
}
