package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/cmdpal/internal/templates"
)

func TestCommand(t *testing.T) {
	assert.Equal(t, "nano", Command("nano"))

	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "vim", Command(""))

	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", Command(""))
}

// Using `true` as the editor leaves the file untouched, so the round-trip
// must reproduce the original collection exactly.
func TestEditRoundTripUnmodified(t *testing.T) {
	original := []templates.Template{
		{Description: "List all files in specified directory", Command: "ls -la {DIRECTORY}"},
		{Description: "Search for text pattern recursively", Command: `grep -r "{PATTERN}" {DIRECTORY:-.}`},
	}

	edited, err := Edit("true", original)
	require.NoError(t, err)
	assert.Equal(t, original, edited)
}

func TestEditFailingEditor(t *testing.T) {
	_, err := Edit("false", []templates.Template{{Description: "d", Command: "c"}})
	assert.Error(t, err)
}
