package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/cmdpal/internal/errors"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Template
		wantErr  bool
	}{
		{
			name:     "simple line",
			line:     "List all files in specified directory :: ls -la {DIRECTORY}",
			expected: Template{"List all files in specified directory", "ls -la {DIRECTORY}"},
		},
		{
			name:     "rightmost separator wins",
			line:     "Namespace :: lookup :: kubectl get pods -n {NAMESPACE}",
			expected: Template{"Namespace :: lookup", "kubectl get pods -n {NAMESPACE}"},
		},
		{
			name:     "history entry",
			line:     "Custom command from history :: df -h",
			expected: Template{HistoryLabel, "df -h"},
		},
		{
			name:    "no separator",
			line:    "just a plain string",
			wantErr: true,
		},
		{
			name:    "empty command",
			line:    "Description ::",
			wantErr: true,
		},
		{
			name:    "empty description",
			line:    ":: ls",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tmpl)
		})
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	original := []Template{
		{"List all files in specified directory", "ls -la {DIRECTORY}"},
		{"Search for text pattern recursively", `grep -r "{PATTERN}" {DIRECTORY:-.}`},
		{HistoryLabel, "df -h"},
	}

	text := Serialize(original)
	parsed, err := ParseCollection(text)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseCollectionSkipsBlanksAndComments(t *testing.T) {
	text := "\n# palette\nShow uptime :: uptime\n\n# trailing comment\n"
	parsed, err := ParseCollection(text)
	require.NoError(t, err)
	assert.Equal(t, []Template{{"Show uptime", "uptime"}}, parsed)
}

func TestParseCollectionRejectsMalformedLine(t *testing.T) {
	_, err := ParseCollection("Show uptime :: uptime\nbroken line\n")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestStoreDedup(t *testing.T) {
	store := NewStore([]Template{
		{"First", "ls -la"},
		{"Duplicate command", "ls -la"},
		{"Second", "df -h"},
	})

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []Template{{"First", "ls -la"}, {"Second", "df -h"}}, store.All())
}

func TestStoreMergeFiltersExisting(t *testing.T) {
	store := NewStore([]Template{
		{"List all files in specified directory", "ls -la {DIRECTORY}"},
	})

	merged := store.Merge([]Template{
		{HistoryLabel, "ls -la {DIRECTORY}"}, // already present as a built-in
		{HistoryLabel, "df -h"},
	})

	assert.Equal(t, 2, merged.Len())
	assert.True(t, merged.Contains("df -h"))
	// The original description is kept for the duplicated command.
	first := merged.All()[0]
	assert.Equal(t, "List all files in specified directory", first.Description)

	// The original store is untouched.
	assert.Equal(t, 1, store.Len())
}

func TestStoreReplace(t *testing.T) {
	store := NewStore(Builtin())
	edited := []Template{{"Only one left", "uptime"}}

	replaced := store.Replace(edited)
	assert.Equal(t, edited, replaced.All())
	assert.Equal(t, len(Builtin()), store.Len())
}

func TestStoreFind(t *testing.T) {
	store := NewStore([]Template{{"Show uptime", "uptime"}})

	tmpl, ok := store.Find("Show uptime :: uptime")
	require.True(t, ok)
	assert.Equal(t, "uptime", tmpl.Command)

	_, ok = store.Find("missing :: line")
	assert.False(t, ok)
}

func TestBuiltinCommandsAreUnique(t *testing.T) {
	store := Load()
	assert.Equal(t, len(Builtin())+len(Platform()), store.Len())
}
