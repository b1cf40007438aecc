package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cmderrors "github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/placeholders"
)

var titleCaser = cases.Title(language.English)

// TerminalPrompter resolves placeholder values with one huh input per
// token. It implements resolve.Prompter.
type TerminalPrompter struct{}

// Prompt reads one line of input for the token. An empty line is returned
// as-is: the resolver decides whether that means "use the default" or
// "required value missing".
func (TerminalPrompter) Prompt(tok placeholders.Token) (string, error) {
	var value string

	input := huh.NewInput().
		Title(PromptTitle(tok.Name)).
		Description(promptDescription(tok)).
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", cmderrors.ErrCanceled
		}
		return "", fmt.Errorf("form error: %w", err)
	}

	return value, nil
}

// PromptTitle humanizes a placeholder name for display:
// OUTPUT_FILE becomes "Output File".
func PromptTitle(name string) string {
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(name, "_", " ")))
}

// promptDescription explains the token's behavior on empty input.
func promptDescription(tok placeholders.Token) string {
	var parts []string
	if tok.HasDefault {
		parts = append(parts, fmt.Sprintf("default: %s (press enter to accept)", tok.Default))
	} else {
		parts = append(parts, "required")
	}
	if tok.Optional {
		parts = append(parts, "optional flag group")
	}
	return "{" + tok.Name + "}: " + strings.Join(parts, ", ")
}
