package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quackshot.yaml")
	data := []byte("arena_width: 800\narena_height: 600\nseed: 42\nendless: true\nstart_level: 99\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Arena{W: 800, H: 600}, cfg.Arena())
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Endless)
	assert.Equal(t, 1, cfg.StartLevel, "out of range start level falls back to 1")
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("arena_width: [oops"), 0o644))
	_, err := LoadConfig(bad)
	assert.Error(t, err)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("arena_width: 0\n"), 0o644))
	cfg, err := LoadConfig(zero)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
