package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	cmderrors "github.com/chazuruo/cmdpal/internal/errors"
)

// Action is what the session does with a resolved command.
type Action string

const (
	// ActionRun executes the resolved command.
	ActionRun Action = "run"
	// ActionCopy places the resolved command on the clipboard.
	ActionCopy Action = "copy"
	// ActionPrint writes the resolved command to stdout.
	ActionPrint Action = "print"
	// ActionCancel returns to the picker without doing anything.
	ActionCancel Action = "cancel"
)

// SelectAction asks what to do with the selected template. The copy option
// is offered only when the clipboard is usable.
func SelectAction(command string, withClipboard bool) (Action, error) {
	options := []huh.Option[Action]{
		huh.NewOption("Run", ActionRun),
	}
	if withClipboard {
		options = append(options, huh.NewOption("Copy to clipboard", ActionCopy))
	}
	options = append(options,
		huh.NewOption("Print", ActionPrint),
		huh.NewOption("Cancel", ActionCancel),
	)

	var action Action
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("Selected").
				Description(command).
				Options(options...).
				Value(&action),
		),
	).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ActionCancel, cmderrors.ErrCanceled
		}
		return ActionCancel, fmt.Errorf("form error: %w", err)
	}

	return action, nil
}
