package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/editor"
)

// EditOptions contains the options for the edit command.
type EditOptions struct {
	ConfigPath string
}

// NewEditCommand creates the edit command: the editor round-trip over the
// full collection.
func NewEditCommand() *cobra.Command {
	opts := &EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the template collection in your editor",
		Long: `Open the full template collection in $EDITOR (or editor.command from
config), one "description :: command" line per template, and read the edited
text back as the new collection.

Only the history-labeled slice of the collection persists: those entries are
rewritten to the history log. Built-in and platform templates are compiled
in, so edits to them last for the current session only (inside the
interactive picker, press Ctrl+E instead).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	return cmd
}

func runEdit(opts *EditOptions) error {
	cfg, store, err := loadSession(opts.ConfigPath)
	if err != nil {
		return err
	}

	edited, err := editor.Edit(editor.Command(cfg.Editor.Command), store.All())
	if err != nil {
		return err
	}

	if err := syncHistory(cfg.History.Path, edited); err != nil {
		return fmt.Errorf("failed to rewrite history: %w", err)
	}

	fmt.Printf("Collection now has %d template(s); history log updated.\n", len(edited))
	return nil
}
