// Package templates defines the command template model and the ordered
// template store assembled from built-ins, platform extensions, and the
// history log.
package templates

import (
	"strings"

	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/placeholders"
)

// Separator divides the description from the command in the textual template
// form. The rightmost occurrence wins when parsing, so a description may
// contain "::" but a command may not (known limitation).
const Separator = "::"

// HistoryLabel is the fixed description given to templates recorded from
// ad-hoc history.
const HistoryLabel = "Custom command from history"

// Template is a description plus a raw command string containing zero or
// more placeholder tokens. The (Description, Command) pair is the template's
// identity; templates are immutable once loaded.
type Template struct {
	Description string
	Command     string
}

// String renders the template in its "description :: command" line form,
// used for display, the fuzzy picker, and the editor round-trip.
func (t Template) String() string {
	return t.Description + " " + Separator + " " + t.Command
}

// Tokens returns the distinct placeholder tokens the command references.
func (t Template) Tokens() []placeholders.Token {
	return placeholders.Extract(t.Command)
}

// ParseLine parses a "description :: command" line. The split happens at the
// rightmost "::".
func ParseLine(line string) (Template, error) {
	idx := strings.LastIndex(line, Separator)
	if idx < 0 {
		return Template{}, &errors.TemplateError{
			Op:  "parse",
			Err: errors.Wrap(errors.ErrInvalid, "missing '::' separator"),
		}
	}

	tmpl := Template{
		Description: strings.TrimSpace(line[:idx]),
		Command:     strings.TrimSpace(line[idx+len(Separator):]),
	}
	if tmpl.Description == "" || tmpl.Command == "" {
		return Template{}, &errors.TemplateError{
			Op:          "parse",
			Description: tmpl.Description,
			Err:         errors.Wrap(errors.ErrInvalid, "empty description or command"),
		}
	}
	return tmpl, nil
}

// Serialize renders the collection as editor text, one template per line.
func Serialize(list []Template) string {
	var b strings.Builder
	for _, t := range list {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ParseCollection parses editor text back into an ordered collection. Blank
// lines and lines starting with '#' are skipped; any other malformed line is
// an error so a bad edit never silently drops templates.
func ParseCollection(text string) ([]Template, error) {
	var list []Template
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tmpl, err := ParseLine(trimmed)
		if err != nil {
			return nil, err
		}
		list = append(list, tmpl)
	}
	return list, nil
}
