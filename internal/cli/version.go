package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, injected by main via SetVersion.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion records build metadata for the version command.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cmdpal %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
