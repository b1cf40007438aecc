package placeholders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "no placeholders",
			input:    "ls -la",
			expected: nil,
		},
		{
			name:  "single required",
			input: "ls -la {DIRECTORY}",
			expected: []Token{
				{Name: "DIRECTORY", Raw: "{DIRECTORY}"},
			},
		},
		{
			name:  "defaulted",
			input: `grep -r "{PATTERN}" {DIRECTORY:-.}`,
			expected: []Token{
				{Name: "PATTERN", Raw: "{PATTERN}"},
				{Name: "DIRECTORY", Raw: "{DIRECTORY:-.}", HasDefault: true, Default: "-."},
			},
		},
		{
			name:  "empty default",
			input: "echo {MESSAGE:}",
			expected: []Token{
				{Name: "MESSAGE", Raw: "{MESSAGE:}", HasDefault: true, Default: ""},
			},
		},
		{
			name:  "default may contain colons",
			input: "curl {URL:http://localhost:8080}",
			expected: []Token{
				{Name: "URL", Raw: "{URL:http://localhost:8080}", HasDefault: true, Default: "http://localhost:8080"},
			},
		},
		{
			name:  "duplicate names collapse to one token",
			input: "cp {FILE} {FILE}.bak",
			expected: []Token{
				{Name: "FILE", Raw: "{FILE}"},
			},
		},
		{
			name:  "underscored name",
			input: "tar -czf {OUTPUT_FILE} .",
			expected: []Token{
				{Name: "OUTPUT_FILE", Raw: "{OUTPUT_FILE}"},
			},
		},
		{
			name:  "optional bracket group",
			input: "rsync -av {SRC} {DST} [--exclude {PATTERN}]",
			expected: []Token{
				{Name: "SRC", Raw: "{SRC}"},
				{Name: "DST", Raw: "{DST}"},
				{Name: "PATTERN", Raw: "{PATTERN}", Optional: true},
			},
		},
		{
			name:  "optional group with default",
			input: "ping [-c {COUNT:4}] {HOST}",
			expected: []Token{
				{Name: "COUNT", Raw: "{COUNT:4}", HasDefault: true, Default: "4", Optional: true},
				{Name: "HOST", Raw: "{HOST}"},
			},
		},
		{
			name:     "lowercase names do not match",
			input:    "echo {name}",
			expected: nil,
		},
		{
			name:     "unmatched braces pass through",
			input:    "awk '{print $1}' {FILE",
			expected: nil,
		},
		{
			name:  "unmatched brace next to a valid token",
			input: "echo { {NAME} }",
			expected: []Token{
				{Name: "NAME", Raw: "{NAME}"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.input))
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		values   map[string]string
		expected string
	}{
		{
			name:     "no placeholders returns raw unchanged",
			raw:      "df -h",
			values:   map[string]string{},
			expected: "df -h",
		},
		{
			name:     "single substitution",
			raw:      "ls -la {DIRECTORY}",
			values:   map[string]string{"DIRECTORY": "/tmp"},
			expected: "ls -la /tmp",
		},
		{
			name:     "default token replaced by its literal default",
			raw:      `grep -r "{PATTERN}" {DIRECTORY:-.}`,
			values:   map[string]string{"PATTERN": "TODO", "DIRECTORY": "-."},
			expected: `grep -r "TODO" -.`,
		},
		{
			name:     "all occurrences get the same value",
			raw:      "cp {FILE} {FILE}.bak",
			values:   map[string]string{"FILE": "notes.txt"},
			expected: "cp notes.txt notes.txt.bak",
		},
		{
			name:     "optional brackets are not stripped",
			raw:      "rsync -av {SRC} {DST} [--exclude {PATTERN}]",
			values:   map[string]string{"SRC": "a/", "DST": "b/", "PATTERN": "*.log"},
			expected: "rsync -av a/ b/ [--exclude *.log]",
		},
		{
			name:     "regex metacharacters in value are literal",
			raw:      "echo {MSG}",
			values:   map[string]string{"MSG": "a$1\\b.*"},
			expected: "echo a$1\\b.*",
		},
		{
			name:     "value containing a brace does not re-expand",
			raw:      "echo {A} {B}",
			values:   map[string]string{"A": "{B}", "B": "x"},
			expected: "echo {B} x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Build(tt.raw, tt.values))
		})
	}
}

// Substituting a token everywhere it occurs leaves no token of that name
// behind, whatever the value.
func TestBuildIdempotentPerToken(t *testing.T) {
	templates := []string{
		"ls -la {DIRECTORY}",
		`grep -r "{PATTERN}" {DIRECTORY:-.}`,
		"cp {FILE} {FILE}.bak",
		"rsync -av {SRC} {DST} [--exclude {PATTERN}]",
	}

	for _, raw := range templates {
		tokens := Extract(raw)
		values := make(map[string]string, len(tokens))
		for _, tok := range tokens {
			values[tok.Name] = "value"
		}

		built := Build(raw, values)
		remaining := Extract(built)
		for _, tok := range tokens {
			for _, left := range remaining {
				require.NotEqual(t, tok.Name, left.Name,
					"token %s survived substitution in %q", tok.Name, raw)
			}
		}
	}
}

func TestNames(t *testing.T) {
	tokens := Extract("scp {FILE} {USER}@{HOST}:{DEST:/tmp}")
	assert.Equal(t, []string{"FILE", "USER", "HOST", "DEST"}, Names(tokens))
}
