package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/chazuruo/cmdpal/internal/clipboard"
	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/history"
	"github.com/chazuruo/cmdpal/internal/placeholders"
	"github.com/chazuruo/cmdpal/internal/resolve"
	"github.com/chazuruo/cmdpal/internal/runner"
	"github.com/chazuruo/cmdpal/internal/templates"
	"github.com/chazuruo/cmdpal/internal/tui"
)

// RunOptions contains the options for the run command.
type RunOptions struct {
	ConfigPath string
	Query      string
	Params     map[string]string
	Shell      string
	DryRun     bool
	Copy       bool
	Yes        bool
	LogPath    string
}

// NewRunCommand creates the run command: a one-shot resolve-and-execute
// without the picker loop.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{
		Params: make(map[string]string),
	}

	cmd := &cobra.Command{
		Use:   "run <query>",
		Short: "Resolve and run a single template",
		Long: `Resolve a template's placeholders and run it once.

The query is matched against the palette: an exact "description :: command"
line wins, otherwise the best fuzzy match is used.

Placeholders are prompted for on a terminal; in scripts, pass them with
--param NAME=value. Defaulted placeholders fall back to their default;
a required placeholder without a value aborts without executing.

Examples:
  cmdpal run "list all files" --param DIRECTORY=/tmp
  cmdpal run "search" --param PATTERN=TODO --dry-run
  cmdpal run "download" --param URL=https://example.com/x.tar.gz --log run.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Query = args[0]
			return runRun(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringToStringVar(&opts.Params, "param", nil, "placeholder values (repeatable, e.g., --param DIRECTORY=/tmp)")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell override (bash, zsh, sh, pwsh)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the resolved command without executing")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "copy the resolved command instead of executing")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "skip dangerous-command confirmation")
	cmd.Flags().StringVar(&opts.LogPath, "log", "", "append a JSON run record to this file")

	return cmd
}

func runRun(opts *RunOptions) error {
	cfg, store, err := loadSession(opts.ConfigPath)
	if err != nil {
		return err
	}

	tmpl, err := matchTemplate(store, opts.Query)
	if err != nil {
		return err
	}

	prompter := pickPrompter()
	params, err := resolve.Resolve(tmpl.Tokens(), prompter, opts.Params)
	if err != nil {
		if me, ok := errors.AsMissingValueError(err); ok {
			return fmt.Errorf("%w\nProvide it with --param %s=value", err, me.Name)
		}
		return err
	}

	command := placeholders.Build(tmpl.Command, resolve.Values(params))

	if opts.DryRun {
		fmt.Println(command)
		return nil
	}

	if err := history.Append(cfg.History.Path, command); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}

	if opts.Copy {
		if err := clipboard.Copy(command); err != nil {
			return err
		}
		fmt.Println("Copied: " + command)
		return nil
	}

	shell := cfg.Runner.Shell
	if opts.Shell != "" {
		shell = opts.Shell
	}

	result := runner.Exec(context.Background(), runner.ExecConfig{
		Command:       command,
		Shell:         shell,
		Stream:        cfg.Runner.StreamOutput,
		DangerChecker: runner.NewDangerChecker(cfg.Runner.DangerousCommandWarnings),
		AutoConfirm:   opts.Yes,
	})

	if opts.LogPath != "" {
		if err := appendRunRecord(opts.LogPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write run log: %v\n", err)
		}
	}

	if result.Output != "" {
		fmt.Print(result.Output)
	}
	if result.Err != nil {
		return fmt.Errorf("failed to start command: %w", result.Err)
	}
	if !result.Success {
		fmt.Fprintf(os.Stderr, "Exited with code %d\n", result.ExitCode)
	}
	return nil
}

// matchTemplate finds the template for a query: exact line match first,
// then best fuzzy match over the palette.
func matchTemplate(store *templates.Store, query string) (templates.Template, error) {
	if tmpl, ok := store.Find(query); ok {
		return tmpl, nil
	}

	matches := fuzzy.Find(query, store.Lines())
	if len(matches) == 0 {
		return templates.Template{}, fmt.Errorf("no template matches %q: %w", query, errors.ErrNotFound)
	}

	tmpl, ok := store.Find(store.Lines()[matches[0].Index])
	if !ok {
		return templates.Template{}, errors.ErrNotFound
	}
	return tmpl, nil
}

// pickPrompter chooses how missing placeholder values are obtained: huh
// prompts on a terminal, otherwise empty input so defaults apply and
// required values fail fast.
func pickPrompter() resolve.Prompter {
	if !IsNoTUI() && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		return tui.TerminalPrompter{}
	}
	return resolve.PrompterFunc(func(placeholders.Token) (string, error) {
		return "", nil
	})
}

// runRecord is one line of the optional JSON run log.
type runRecord struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Command  string    `json:"command"`
	ExitCode int       `json:"exit_code"`
	Success  bool      `json:"success"`
	Duration string    `json:"duration"`
}

// appendRunRecord appends one JSON line describing the run.
func appendRunRecord(path string, result runner.ExecResult) error {
	record := runRecord{
		ID:       uuid.NewString(),
		Time:     time.Now().UTC(),
		Command:  result.Command,
		ExitCode: result.ExitCode,
		Success:  result.Success,
		Duration: result.Duration.String(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}
