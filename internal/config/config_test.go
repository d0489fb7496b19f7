package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFile points IDLEWAGE_CONFIG at a temp file holding body, or at a
// missing file when body is empty.
func withConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if body != "" {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	t.Setenv("IDLEWAGE_CONFIG", path)
	return path
}

func mustLoad(t *testing.T) Config {
	t.Helper()
	cfg, err := LoadConfig()
	require.NoError(t, err)
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "RM", cfg.Currency)
	assert.False(t, cfg.Debug)
	assert.Contains(t, cfg.DBPath, "idlewage.db")
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	withConfigFile(t, "")

	assert.Equal(t, DefaultConfig(), mustLoad(t))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	withConfigFile(t, "")
	t.Setenv("IDLEWAGE_DB", "/tmp/idle.db")
	t.Setenv("IDLEWAGE_CURRENCY", " $ ")
	t.Setenv("IDLEWAGE_DEBUG", "true")

	cfg := mustLoad(t)

	assert.Equal(t, "/tmp/idle.db", cfg.DBPath)
	assert.Equal(t, "$", cfg.Currency)
	assert.True(t, cfg.Debug)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestLoadConfig_File(t *testing.T) {
	withConfigFile(t, "db_path: /data/idle.db\ncurrency: \"€\"\ndebug: true\n")

	cfg := mustLoad(t)

	assert.Equal(t, "/data/idle.db", cfg.DBPath)
	assert.Equal(t, "€", cfg.Currency)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_FilePartial(t *testing.T) {
	withConfigFile(t, "currency: USD\n")

	cfg := mustLoad(t)

	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, DefaultConfig().DBPath, cfg.DBPath)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_EnvBeatsFile(t *testing.T) {
	withConfigFile(t, "currency: USD\ndebug: true\n")
	t.Setenv("IDLEWAGE_CURRENCY", "RM")
	t.Setenv("IDLEWAGE_DEBUG", "false")

	cfg := mustLoad(t)

	assert.Equal(t, "RM", cfg.Currency)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := withConfigFile(t, "currency: [unclosed\n")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadConfig_EmptyCurrencyAllowed(t *testing.T) {
	withConfigFile(t, "")
	t.Setenv("IDLEWAGE_CURRENCY", "")
	assert.Equal(t, "", mustLoad(t).Currency)
}

func TestLoadConfig_InvalidDebugIgnored(t *testing.T) {
	withConfigFile(t, "")
	t.Setenv("IDLEWAGE_DEBUG", "maybe")

	cfg := mustLoad(t)

	assert.False(t, cfg.Debug)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())
}

func TestLoadConfig_InvalidDebugKeepsFileValue(t *testing.T) {
	withConfigFile(t, "debug: true\n")
	t.Setenv("IDLEWAGE_DEBUG", "maybe")

	cfg := mustLoad(t)

	assert.True(t, cfg.Debug)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestPath(t *testing.T) {
	t.Setenv("IDLEWAGE_CONFIG", "")
	assert.Equal(t, "config.yaml", filepath.Base(Path()))

	t.Setenv("IDLEWAGE_CONFIG", "/etc/idlewage.yaml")
	assert.Equal(t, "/etc/idlewage.yaml", Path())
}
