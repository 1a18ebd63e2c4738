package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"postdeck/internal/config"
)

func TestRunConfigShowPrintsEffectiveValues(t *testing.T) {
	t.Setenv("POSTDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("POSTDECK_FEED_LIMIT", "12")
	config.Load()

	var buf bytes.Buffer
	orig := configOutputWriter
	configOutputWriter = &buf
	defer func() { configOutputWriter = orig }()

	runConfigShow(configShowCmd, nil)

	out := buf.String()
	assert.Contains(t, out, "feed_limit = 12")
	assert.Contains(t, out, "feed_base_url = https://jsonplaceholder.typicode.com")
	assert.Contains(t, out, "loading_min_duration = 5s")
}
