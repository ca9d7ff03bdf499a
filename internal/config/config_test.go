package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) (string, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "volnita")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return home, path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "origin", cfg.Remote)
	assert.True(t, cfg.RelativeDates)
	assert.Empty(t, cfg.Theme)
	assert.Empty(t, cfg.DebugLog)
	assert.Empty(t, cfg.RecentFile)
	assert.NotNil(t, cfg.CommandAliases)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigParsesValues(t *testing.T) {
	_, _ = writeConfig(t, `
theme: Nord
debug_log: /tmp/volnita.log
recent_file: /tmp/recent.toml
remote: upstream
relative_dates: "no"
command_aliases:
  g: top
  G: bottom
  "bad alias": top
  empty: ""
`)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "/tmp/volnita.log", cfg.DebugLog)
	assert.Equal(t, "/tmp/recent.toml", cfg.RecentFile)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.False(t, cfg.RelativeDates)
	assert.Equal(t, map[string]string{"g": "top", "G": "bottom"}, cfg.CommandAliases)
}

func TestLoadConfigUnknownThemeIgnored(t *testing.T) {
	_, _ = writeConfig(t, "theme: not-a-theme\n")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Theme)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, _ = writeConfig(t, "theme: [unterminated\n")

	cfg, err := LoadConfig("")
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	_, path := writeConfig(t, "remote: fork\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fork", cfg.Remote)
}

func TestLoadConfigRejectsPathOutsideConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	outside := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(outside, []byte("remote: fork\n"), 0o600))

	cfg, err := LoadConfig(outside)
	require.Error(t, err)
	assert.Equal(t, "origin", cfg.Remote)
}

func TestRecentPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, "volnita", "recent.toml"), cfg.RecentPath())

	cfg.RecentFile = "/elsewhere/recent.toml"
	assert.Equal(t, "/elsewhere/recent.toml", cfg.RecentPath())
}

func TestCoerceBool(t *testing.T) {
	assert.True(t, coerceBool(nil, true))
	assert.True(t, coerceBool("YES", false))
	assert.False(t, coerceBool("off", true))
	assert.True(t, coerceBool(1, false))
	assert.True(t, coerceBool("maybe", true))
}
