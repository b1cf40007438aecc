// Package placeholders provides placeholder parsing and substitution for
// command templates.
//
// A placeholder is written {NAME} or {NAME:default}. Names are uppercase
// letters and underscores. Everything after the first ':' up to the closing
// brace is the default value, taken literally (so {DIRECTORY:-.} has the
// default "-."). A placeholder inside a bracketed segment such as
// [--flag {NAME}] is tagged optional; the tag is advisory only and changes
// nothing about prompting or substitution.
package placeholders

import (
	"regexp"
	"strings"
)

var (
	// tokenRegex matches {NAME} and {NAME:default} placeholders.
	tokenRegex = regexp.MustCompile(`\{([A-Z_]+)(:[^}]*)?\}`)

	// bracketRegex matches [...] optional segments used for tagging.
	bracketRegex = regexp.MustCompile(`\[[^\[\]]*\]`)
)

// Token is a single distinct placeholder referenced by a template.
type Token struct {
	// Name is the placeholder identifier, e.g. "OUTPUT_FILE".
	Name string

	// Raw is the exact matched text, e.g. "{DIRECTORY:-.}". Substitution
	// replaces every literal occurrence of Raw.
	Raw string

	// HasDefault reports whether the placeholder carries a ':' default.
	HasDefault bool

	// Default is the literal default text (may be empty).
	Default string

	// Optional is true when the placeholder sits inside a [...] segment.
	// Display-only: optional placeholders prompt and substitute exactly
	// like required ones.
	Optional bool
}

// Extract returns the distinct placeholder tokens in s, in first-occurrence
// order. A template that references the same name twice yields one token; all
// occurrences later receive the same value. Unmatched braces do not match the
// grammar and pass through literally.
func Extract(s string) []Token {
	matches := tokenRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return nil
	}

	optRanges := bracketRegex.FindAllStringIndex(s, -1)

	seen := make(map[string]bool)
	var result []Token

	for _, m := range matches {
		raw := s[m[0]:m[1]]
		name := s[m[2]:m[3]]
		if seen[name] {
			continue
		}
		seen[name] = true

		tok := Token{
			Name:     name,
			Raw:      raw,
			Optional: insideAny(optRanges, m[0], m[1]),
		}
		if m[4] >= 0 {
			tok.HasDefault = true
			tok.Default = s[m[4]+1 : m[5]] // skip the ':'
		}
		result = append(result, tok)
	}

	return result
}

// insideAny reports whether [start, end) lies within one of the ranges.
func insideAny(ranges [][]int, start, end int) bool {
	for _, r := range ranges {
		if start >= r[0] && end <= r[1] {
			return true
		}
	}
	return false
}

// Build substitutes resolved values into a raw template string and returns
// the final command. Substitution is literal text replacement of each token's
// exact bracketed form; it is not shell-aware, and optional [...] decorations
// are left in place with their placeholder substituted.
//
// The replacement runs in a single pass over the original string, so values
// containing placeholder-shaped text are never re-expanded. Tokens without an
// entry in values are left untouched; the resolver guarantees completeness
// before Build is called.
func Build(raw string, values map[string]string) string {
	return tokenRegex.ReplaceAllStringFunc(raw, func(match string) string {
		body := match[1 : len(match)-1]
		name := body
		if i := strings.IndexByte(body, ':'); i >= 0 {
			name = body[:i]
		}
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}

// Names returns just the names of the given tokens, preserving order.
func Names(tokens []Token) []string {
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = tok.Name
	}
	return names
}
