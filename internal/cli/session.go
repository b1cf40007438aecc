package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/clipboard"
	"github.com/chazuruo/cmdpal/internal/config"
	"github.com/chazuruo/cmdpal/internal/editor"
	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/history"
	"github.com/chazuruo/cmdpal/internal/placeholders"
	"github.com/chazuruo/cmdpal/internal/resolve"
	"github.com/chazuruo/cmdpal/internal/runner"
	"github.com/chazuruo/cmdpal/internal/templates"
	"github.com/chazuruo/cmdpal/internal/tui"
)

var (
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SessionOptions contains the options for the interactive session.
type SessionOptions struct {
	ConfigPath string
}

// NewSessionRun returns the RunE used by the root command: the interactive
// pick / resolve / build / record / execute loop.
func NewSessionRun(opts *SessionOptions) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runSession(opts)
	}
}

func runSession(opts *SessionOptions) error {
	if IsNoTUI() {
		return fmt.Errorf("the interactive session needs a TUI; use 'cmdpal run' or 'cmdpal list' with --no-tui")
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("stdin is not a terminal; use 'cmdpal run <query> --param NAME=value' for scripted use")
	}

	cfg, store, err := loadSession(opts.ConfigPath)
	if err != nil {
		return err
	}
	if !cfg.TUI.Enabled {
		return fmt.Errorf("tui.enabled is false in config; use 'cmdpal run' instead")
	}

	clipboardOK := cfg.Clipboard.Enabled && clipboard.Available()

	for {
		tmpl, outcome, err := tui.Pick(store, cfg.TUI.ShowPreview)
		if err != nil {
			return err
		}

		switch outcome {
		case tui.PickQuit:
			return nil

		case tui.PickEdit:
			edited, err := editSession(cfg, store)
			if err != nil {
				if errors.IsCanceled(err) {
					continue
				}
				fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Edit failed: %v", err)))
				continue
			}
			store = edited
			continue
		}

		if err := invoke(cfg, tmpl, clipboardOK); err != nil {
			if errors.IsCanceled(err) {
				continue
			}
			if errors.IsMissingValue(err) {
				fmt.Fprintln(os.Stderr, warnStyle.Render(err.Error()))
				continue
			}
			return err
		}
	}
}

// invoke takes one selected template through action choice, resolution,
// building, recording, and dispatch. A missing required value aborts only
// this invocation.
func invoke(cfg *config.Config, tmpl templates.Template, clipboardOK bool) error {
	action, err := tui.SelectAction(tmpl.String(), clipboardOK)
	if err != nil {
		return err
	}
	if action == tui.ActionCancel {
		return nil
	}

	params, err := resolve.Resolve(tmpl.Tokens(), tui.TerminalPrompter{}, nil)
	if err != nil {
		return err
	}

	command := placeholders.Build(tmpl.Command, resolve.Values(params))

	// Recording is independent of execution: a failure here warns only.
	if action == tui.ActionRun || action == tui.ActionCopy {
		if err := history.Append(cfg.History.Path, command); err != nil {
			fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Warning: could not record history: %v", err)))
		}
	}

	switch action {
	case tui.ActionRun:
		result := runner.Exec(context.Background(), runner.ExecConfig{
			Command:       command,
			Shell:         cfg.Runner.Shell,
			Stream:        cfg.Runner.StreamOutput,
			DangerChecker: runner.NewDangerChecker(cfg.Runner.DangerousCommandWarnings),
		})
		reportResult(result)

	case tui.ActionCopy:
		if err := clipboard.Copy(command); err != nil {
			fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Copy failed: %v", err)))
		} else {
			fmt.Println(okStyle.Render("Copied: ") + command)
		}

	case tui.ActionPrint:
		fmt.Println(command)
	}

	return nil
}

// reportResult prints the outcome of a run. A non-zero exit is
// informational; the session loop continues either way.
func reportResult(result runner.ExecResult) {
	if result.Canceled {
		fmt.Println(infoStyle.Render("Canceled."))
		return
	}
	if result.Output != "" {
		fmt.Print(result.Output)
	}
	if result.Success {
		fmt.Println(okStyle.Render(fmt.Sprintf("Done in %s", result.Duration.Round(time.Millisecond))))
		return
	}
	if result.Err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Failed to start: %v", result.Err)))
		return
	}
	fmt.Println(infoStyle.Render(fmt.Sprintf("Exited with code %d", result.ExitCode)))
}

// editSession round-trips the full collection through the editor and
// re-syncs the history-labeled slice of it back to the log.
func editSession(cfg *config.Config, store *templates.Store) (*templates.Store, error) {
	edited, err := editor.Edit(editor.Command(cfg.Editor.Command), store.All())
	if err != nil {
		return nil, err
	}

	if err := syncHistory(cfg.History.Path, edited); err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("Warning: could not rewrite history: %v", err)))
	}

	return store.Replace(edited), nil
}

// syncHistory rewrites the log so it holds exactly the history-labeled
// entries of the edited collection. Built-in changes live only for the
// session; the history log is the one persisted slice.
func syncHistory(path string, edited []templates.Template) error {
	if err := history.Clear(path); err != nil {
		return err
	}
	for _, t := range edited {
		if t.Description != templates.HistoryLabel {
			continue
		}
		if err := history.Append(path, t.Command); err != nil {
			return err
		}
	}
	return nil
}
