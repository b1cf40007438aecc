// Package clipboard wraps the system clipboard. Unavailability is a normal
// condition: the copy action is simply omitted from the interactive flow.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/chazuruo/cmdpal/internal/errors"
)

// Available reports whether a supported clipboard mechanism exists on this
// system.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if !Available() {
		return errors.Wrap(errors.ErrUnavailable, "clipboard")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "clipboard write")
	}
	return nil
}
