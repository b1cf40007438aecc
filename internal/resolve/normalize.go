package resolve

import (
	"regexp"
	"strings"
)

// urlRegex matches the first well-formed http(s) URL, stopping at whitespace
// or a semicolon.
var urlRegex = regexp.MustCompile(`https?://[^\s;]+`)

// Normalize applies name-specific cleanup to an entered value. Tokens named
// URL get the first http(s):// substring extracted, dropping anything pasted
// after it; every other name passes through unchanged.
func Normalize(name, value string) string {
	if name != "URL" {
		return value
	}
	if !strings.HasPrefix(value, "http") {
		return value
	}
	if m := urlRegex.FindString(value); m != "" {
		return m
	}
	return value
}
