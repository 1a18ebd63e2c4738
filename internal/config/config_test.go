package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	Load()

	assert.Equal(t, "https://jsonplaceholder.typicode.com", Get("feed_base_url", ""))
	assert.Equal(t, 18, GetInt("feed_limit", 0))
	assert.Equal(t, 10*time.Second, GetDuration("feed_timeout", 0))
	assert.Equal(t, 5*time.Second, GetDuration("loading_min_duration", 0))
	assert.Equal(t, "https://picsum.photos/seed/%d/600/400", Get("feed_image_url_template", ""))
	assert.False(t, GetBool("logging_enabled", true))

	got := Get("missing", "default")
	require.Equal(t, "default", got)
}

func TestLoadFromFileFlattensTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
logging_level = "debug"

[feed]
limit = 12
base_url = "https://example.com/api"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("POSTDECK_CONFIG_PATH", path)

	Load()

	assert.Equal(t, 12, GetInt("feed_limit", 0))
	assert.Equal(t, "https://example.com/api", Get("feed_base_url", ""))
	assert.Equal(t, "debug", Get("logging_level", ""))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("feed_limit = 12\n"), 0644))
	t.Setenv("POSTDECK_CONFIG_PATH", path)
	t.Setenv("POSTDECK_FEED_LIMIT", "24")

	Load()

	assert.Equal(t, 24, GetInt("feed_limit", 0))
}

func TestValidationFallsBackToDefaults(t *testing.T) {
	t.Setenv("POSTDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("POSTDECK_FEED_LIMIT", "0")
	t.Setenv("POSTDECK_FEED_TIMEOUT", "soon")
	t.Setenv("POSTDECK_FEED_BASE_URL", "not-a-url")
	t.Setenv("POSTDECK_FEED_IMAGE_URL_TEMPLATE", "https://example.com/no-placeholder")
	t.Setenv("POSTDECK_LOGGING_LEVEL", "loud")
	t.Setenv("POSTDECK_LOGGING_ENABLED", "maybe")

	Load()

	assert.Equal(t, 18, GetInt("feed_limit", 0))
	assert.Equal(t, 10*time.Second, GetDuration("feed_timeout", 0))
	assert.Equal(t, "https://jsonplaceholder.typicode.com", Get("feed_base_url", ""))
	assert.Equal(t, "https://picsum.photos/seed/%d/600/400", Get("feed_image_url_template", ""))
	assert.Equal(t, "info", Get("logging_level", ""))
	assert.Equal(t, "false", Get("logging_enabled", ""))
}

func TestBoolNormalization(t *testing.T) {
	t.Setenv("POSTDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("POSTDECK_LOGGING_ENABLED", "yes")

	Load()

	assert.Equal(t, "true", Get("logging_enabled", ""))
	assert.True(t, GetBool("logging_enabled", false))
}

func TestWriteSample(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("POSTDECK_CONFIG_PATH", "")

	Load()

	path, err := WriteSample()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "postdeck", "config.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# postdeck configuration")
	assert.Contains(t, string(data), "feed_limit = 18")

	// A second init refuses to clobber the existing file.
	_, err = WriteSample()
	assert.Error(t, err)
}

func TestAllIsSorted(t *testing.T) {
	t.Setenv("POSTDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.toml"))
	Load()

	pairs := All()
	require.NotEmpty(t, pairs)
	for i := 1; i < len(pairs); i++ {
		assert.Less(t, pairs[i-1].Key, pairs[i].Key)
	}
}
