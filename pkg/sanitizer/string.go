// Package sanitizer normalizes free-text input before validation: search
// queries, venue names, and cities arrive from forms with arbitrary
// whitespace.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading/trailing whitespace and collapses interior
// whitespace runs into single spaces.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return b.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeCity(city string) string {
	return TrimAndNormalize(city)
}

// NormalizeQuery prepares a free-text search query for matching.
func NormalizeQuery(q string) string {
	return strings.ToLower(TrimAndNormalize(q))
}
