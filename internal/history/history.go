// Package history persists ad-hoc commands to a flat append-only log and
// loads them back as templates for future sessions.
//
// The log holds one line per command in the canonical form
//
//	Custom command from history :: <command text>
//
// Appends are deduplicated by exact line match. The log is single-writer by
// design: concurrent processes sharing one file are out of scope.
package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/templates"
)

// EntryLine renders the canonical log line for a command.
func EntryLine(command string) string {
	return templates.HistoryLabel + " " + templates.Separator + " " + command
}

// Load reads the log and returns its entries as templates, in file order.
// A missing file is an empty history, not an error.
func Load(path string) ([]templates.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "open history")
	}
	defer f.Close()

	var list []templates.Template
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tmpl, err := templates.ParseLine(line)
		if err != nil {
			// Tolerate hand-edited garbage lines instead of losing the log.
			continue
		}
		list = append(list, tmpl)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read history")
	}
	return list, nil
}

// Contains reports whether the log already holds the exact canonical line
// for the given command.
func Contains(path, command string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "open history")
	}
	defer f.Close()

	want := EntryLine(command)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == want {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// Append records a command in the log unless its canonical line is already
// present. Parent directories are created as needed. Failures here are
// best-effort for callers: recording never blocks command execution.
func Append(path, command string) error {
	if command == "" {
		return errors.Wrap(errors.ErrInvalid, "append history")
	}

	exists, err := Contains(path, command)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create history dir")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open history")
	}
	defer f.Close()

	if _, err := f.WriteString(EntryLine(command) + "\n"); err != nil {
		return errors.Wrap(err, "write history")
	}
	return nil
}

// Clear truncates the log. A missing file is already clear.
func Clear(path string) error {
	err := os.Truncate(path, 0)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "clear history")
	}
	return nil
}
