package cli

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/placeholders"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	ConfigPath string
	Plain      bool
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the template palette",
		Long: `List every template in the session palette: built-ins, platform
extensions, and recorded history, in order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "print raw 'description :: command' lines")

	return cmd
}

func runList(opts *ListOptions) error {
	_, store, err := loadSession(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.Plain || IsNoTUI() {
		for _, line := range store.Lines() {
			fmt.Println(line)
		}
		return nil
	}

	tbl := table.New("Description", "Command", "Placeholders")
	for _, t := range store.All() {
		names := placeholders.Names(t.Tokens())
		tbl.AddRow(t.Description, t.Command, strings.Join(names, ", "))
	}
	tbl.Print()

	return nil
}
