package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/config"
	"github.com/chazuruo/cmdpal/internal/history"
)

// HistoryOptions contains the options for the history command.
type HistoryOptions struct {
	ConfigPath string
	Clear      bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the recorded command history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "truncate the history log")

	return cmd
}

func runHistory(opts *HistoryOptions) error {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadWithDefaults()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Clear {
		if err := history.Clear(cfg.History.Path); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	entries, err := history.Load(cfg.History.Path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No recorded commands.")
		return nil
	}
	for _, t := range entries {
		fmt.Println(t.Command)
	}
	return nil
}
