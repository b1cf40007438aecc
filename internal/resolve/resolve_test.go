package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/cmdpal/internal/errors"
	"github.com/chazuruo/cmdpal/internal/placeholders"
)

// scriptedPrompter returns canned answers keyed by token name and records
// which tokens were prompted.
type scriptedPrompter struct {
	answers  map[string]string
	prompted []string
}

func (p *scriptedPrompter) Prompt(tok placeholders.Token) (string, error) {
	p.prompted = append(p.prompted, tok.Name)
	return p.answers[tok.Name], nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		answers  map[string]string
		presets  map[string]string
		expected []Param
		wantErr  string
	}{
		{
			name:     "no tokens resolves to empty",
			raw:      "uptime",
			answers:  map[string]string{},
			expected: []Param{},
		},
		{
			name:     "required token with input",
			raw:      "ls -la {DIRECTORY}",
			answers:  map[string]string{"DIRECTORY": "/tmp"},
			expected: []Param{{Name: "DIRECTORY", Value: "/tmp"}},
		},
		{
			name:    "required token left empty fails",
			raw:     "ls -la {DIRECTORY}",
			answers: map[string]string{},
			wantErr: "required value missing for {DIRECTORY}",
		},
		{
			name:    "empty input falls back to default",
			raw:     `grep -r "{PATTERN}" {DIRECTORY:-.}`,
			answers: map[string]string{"PATTERN": "TODO"},
			expected: []Param{
				{Name: "PATTERN", Value: "TODO"},
				{Name: "DIRECTORY", Value: "-."},
			},
		},
		{
			name:     "non-empty input overrides default",
			raw:      "ping [-c {COUNT:4}] {HOST}",
			answers:  map[string]string{"COUNT": "10", "HOST": "example.com"},
			expected: []Param{{Name: "COUNT", Value: "10"}, {Name: "HOST", Value: "example.com"}},
		},
		{
			name:     "preset wins over prompting",
			raw:      "ls -la {DIRECTORY}",
			answers:  map[string]string{"DIRECTORY": "/ignored"},
			presets:  map[string]string{"DIRECTORY": "/var/log"},
			expected: []Param{{Name: "DIRECTORY", Value: "/var/log"}},
		},
		{
			name:    "URL value is truncated at trailing garbage",
			raw:     "curl -O {URL}",
			answers: map[string]string{"URL": "https://example.com/file.tar.gz; rm -rf /"},
			expected: []Param{
				{Name: "URL", Value: "https://example.com/file.tar.gz"},
			},
		},
		{
			name:     "optional token still requires a value",
			raw:      "rsync -av {SRC} [--exclude {PATTERN}]",
			answers:  map[string]string{"SRC": "a/"},
			wantErr:  "required value missing for {PATTERN}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &scriptedPrompter{answers: tt.answers}
			params, err := Resolve(placeholders.Extract(tt.raw), prompter, tt.presets)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.True(t, errors.IsMissingValue(err))
				assert.Nil(t, params)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestResolveAllOrNothing(t *testing.T) {
	// The second token fails; no partial result is surfaced.
	prompter := &scriptedPrompter{answers: map[string]string{"SRC": "a/"}}
	params, err := Resolve(placeholders.Extract("cp {SRC} {DST}"), prompter, nil)
	require.Error(t, err)
	assert.Nil(t, params)

	me, ok := errors.AsMissingValueError(err)
	require.True(t, ok)
	assert.Equal(t, "DST", me.Name)
}

func TestResolvePresetSkipsPrompt(t *testing.T) {
	prompter := &scriptedPrompter{answers: map[string]string{}}
	_, err := Resolve(
		placeholders.Extract("ls {DIRECTORY}"),
		prompter,
		map[string]string{"DIRECTORY": "/tmp"},
	)
	require.NoError(t, err)
	assert.Empty(t, prompter.prompted)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		value    string
		expected string
	}{
		{
			name:     "URL with shell injection tail",
			token:    "URL",
			value:    "https://example.com/file.tar.gz; rm -rf /",
			expected: "https://example.com/file.tar.gz",
		},
		{
			name:     "URL stops at whitespace",
			token:    "URL",
			value:    "http://host/path and more",
			expected: "http://host/path",
		},
		{
			name:     "clean URL unchanged",
			token:    "URL",
			value:    "https://example.com/a?b=c",
			expected: "https://example.com/a?b=c",
		},
		{
			name:     "URL token with non-http value passes through",
			token:    "URL",
			value:    "ftp://example.com/file",
			expected: "ftp://example.com/file",
		},
		{
			name:     "other names pass through",
			token:    "PATTERN",
			value:    "https://example.com; rm -rf /",
			expected: "https://example.com; rm -rf /",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.token, tt.value))
		})
	}
}

func TestValues(t *testing.T) {
	params := []Param{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}}
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, Values(params))
}
