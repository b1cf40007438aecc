// Package config provides configuration management for cmdpal.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chazuruo/cmdpal/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns ~/.config/cmdpal/config.toml if it exists, or empty string
// (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "cmdpal", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path. Missing file is an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	// Start with defaults so a partial file leaves the rest intact
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	applyEnvOverrides(cfg)
	expandPath(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPath(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &errors.ConfigError{Err: err}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: CMDPAL_<SECTION>_<FIELD>
//
// Examples:
// - CMDPAL_HISTORY_PATH overrides [history].path
// - CMDPAL_RUNNER_SHELL overrides [runner].shell
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyString("CMDPAL_HISTORY_PATH", &c.History.Path)

	applyString("CMDPAL_RUNNER_SHELL", &c.Runner.Shell)
	applyBool("CMDPAL_RUNNER_STREAM_OUTPUT", &c.Runner.StreamOutput)
	applyBool("CMDPAL_RUNNER_DANGEROUS_COMMAND_WARNINGS", &c.Runner.DangerousCommandWarnings)

	applyString("CMDPAL_EDITOR_COMMAND", &c.Editor.Command)

	applyBool("CMDPAL_TUI_ENABLED", &c.TUI.Enabled)
	applyBool("CMDPAL_TUI_SHOW_PREVIEW", &c.TUI.ShowPreview)

	applyBool("CMDPAL_CLIPBOARD_ENABLED", &c.Clipboard.Enabled)
}

// expandPath expands ~ to the home directory in the history path.
func expandPath(c *Config) {
	if strings.HasPrefix(c.History.Path, "~/") || c.History.Path == "~" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			c.History.Path = filepath.Join(homeDir, strings.TrimPrefix(c.History.Path, "~/"))
		}
	}
}
