// Package cli provides Cobra command definitions for cmdpal.
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/config"
	"github.com/chazuruo/cmdpal/internal/history"
	"github.com/chazuruo/cmdpal/internal/templates"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// noTUIMutex protects NoTUI for concurrent access.
	noTUIMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text output")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	noTUIMutex.RLock()
	defer noTUIMutex.RUnlock()
	return NoTUI
}

// loadSession loads the config and assembles the session palette:
// built-ins, platform extensions, then the history log merged in with
// duplicate commands filtered out. History read errors are reported but
// never fatal.
func loadSession(configPath string) (*config.Config, *templates.Store, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadWithDefaults()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := templates.Load()

	entries, err := history.Load(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read history: %v\n", err)
	} else {
		store = store.Merge(entries)
	}

	return cfg, store, nil
}
