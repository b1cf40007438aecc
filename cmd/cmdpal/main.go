package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	cli.SetVersion(Version, Commit, Date)

	sessionOpts := &cli.SessionOptions{}

	rootCmd := &cobra.Command{
		Use:   "cmdpal",
		Short: "Interactive command-template runner",
		Long: `cmdpal keeps a palette of shell-command templates, lets you fuzzy-pick
one, fills in {PLACEHOLDER} parameters interactively, and runs or copies the
resolved command. Ad-hoc invocations are recorded and reappear in future
sessions.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		RunE:    cli.NewSessionRun(sessionOpts),
	}

	rootCmd.Flags().StringVar(&sessionOpts.ConfigPath, "config", "", "config file path")

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewRunCommand())
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(cli.NewEditCommand())
	rootCmd.AddCommand(cli.NewHistoryCommand())
	rootCmd.AddCommand(cli.NewExportCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
