// Package editor round-trips the template collection through an external
// text editor, one template per "description :: command" line.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/templates"
)

const header = `# cmdpal templates
# One template per line: description :: command with {PLACEHOLDER} or {PLACEHOLDER:default} tokens.
# Lines starting with '#' and blank lines are ignored. Deleting a line removes the template.
`

// Command picks the editor to launch: the configured command if set,
// otherwise $EDITOR, otherwise vi.
func Command(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// Edit writes the collection to a temp file, opens it in the editor
// (inheriting the terminal), and parses the result back as the new full
// ordered collection.
func Edit(editorCmd string, list []templates.Template) ([]templates.Template, error) {
	f, err := os.CreateTemp("", "cmdpal-edit-*.txt")
	if err != nil {
		return nil, errors.Wrap(err, "create temp file")
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(header + templates.Serialize(list)); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write temp file")
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrap(err, "close temp file")
	}

	// Editor commands may carry arguments ("code --wait").
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, errors.Wrap(errors.ErrInvalid, "empty editor command")
	}
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(err, "run editor")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read edited file")
	}

	edited, err := templates.ParseCollection(string(data))
	if err != nil {
		return nil, err
	}
	return edited, nil
}
