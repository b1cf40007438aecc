package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/cmdpal/internal/testutil"
)

func TestLoad(t *testing.T) {
	path := testutil.WriteFile(t, "config.toml", `
[history]
path = "/tmp/cmdpal-test/history"

[runner]
shell = "sh"
stream_output = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cmdpal-test/history", cfg.History.Path)
	assert.Equal(t, "sh", cfg.Runner.Shell)
	assert.False(t, cfg.Runner.StreamOutput)
	// Unset sections keep their defaults.
	assert.True(t, cfg.TUI.Enabled)
	assert.True(t, cfg.Clipboard.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestLoadInvalidShell(t *testing.T) {
	path := testutil.WriteFile(t, "config.toml", `
[runner]
shell = "fish"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runner.shell")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CMDPAL_HISTORY_PATH", "/tmp/override/history")
	t.Setenv("CMDPAL_RUNNER_SHELL", "sh")
	t.Setenv("CMDPAL_TUI_ENABLED", "false")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, "/tmp/override/history", cfg.History.Path)
	assert.Equal(t, "sh", cfg.Runner.Shell)
	assert.False(t, cfg.TUI.Enabled)
}

func TestExpandPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = "~/custom/history"
	expandPath(cfg)

	assert.NotContains(t, cfg.History.Path, "~")
	assert.Contains(t, cfg.History.Path, "custom/history")
}
