// Package config provides configuration management for cmdpal.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level configuration struct for cmdpal.
type Config struct {
	History   HistoryConfig   `toml:"history"`
	Runner    RunnerConfig    `toml:"runner"`
	Editor    EditorConfig    `toml:"editor"`
	TUI       TUIConfig       `toml:"tui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// HistoryConfig contains history log settings.
type HistoryConfig struct {
	// Path is the location of the flat history log file.
	Path string `toml:"path"`
}

// RunnerConfig contains command execution settings.
type RunnerConfig struct {
	// Shell is the shell used to execute resolved commands.
	// Valid values: "bash", "zsh", "sh", "pwsh".
	Shell string `toml:"shell"`

	// StreamOutput controls whether command output is attached directly to
	// the terminal (true) or captured and printed afterwards (false).
	StreamOutput bool `toml:"stream_output"`

	// DangerousCommandWarnings enables confirmation prompts for commands
	// matching known destructive patterns.
	DangerousCommandWarnings bool `toml:"dangerous_command_warnings"`
}

// EditorConfig contains editor settings.
type EditorConfig struct {
	// Command is the editor command to use (if unset, uses $EDITOR).
	Command string `toml:"command"`
}

// TUIConfig contains terminal UI settings.
type TUIConfig struct {
	// Enabled controls whether the interactive picker is used
	// (when false, only the non-interactive subcommands work).
	Enabled bool `toml:"enabled"`

	// ShowPreview controls whether the picker shows the placeholder
	// preview pane for the highlighted template.
	ShowPreview bool `toml:"show_preview"`
}

// ClipboardConfig contains clipboard settings.
type ClipboardConfig struct {
	// Enabled controls whether the copy action is offered at all.
	// Availability is probed separately at runtime.
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	// Detect default shell from environment
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "bash"
	} else {
		shell = filepath.Base(shell)
	}
	if !validShells[shell] {
		shell = "bash"
	}

	return &Config{
		History: HistoryConfig{
			Path: filepath.Join(homeDir, ".config", "cmdpal", "history"),
		},
		Runner: RunnerConfig{
			Shell:                    shell,
			StreamOutput:             true,
			DangerousCommandWarnings: true,
		},
		Editor: EditorConfig{
			Command: "",
		},
		TUI: TUIConfig{
			Enabled:     true,
			ShowPreview: true,
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
	}
}

var validShells = map[string]bool{
	"bash": true,
	"zsh":  true,
	"sh":   true,
	"pwsh": true,
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	if c.History.Path == "" {
		return fmt.Errorf("history.path cannot be empty")
	}
	if !validShells[c.Runner.Shell] {
		return fmt.Errorf("runner.shell must be one of: bash, zsh, sh, pwsh; got %q", c.Runner.Shell)
	}
	return nil
}
