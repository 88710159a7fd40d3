// Package slug derives URL-safe identifiers for venues that have no stored
// slug of their own.
package slug

import "strings"

// Make builds a slug from a venue name and optional city. The two are joined
// with a space (the city is omitted when empty), lowercased, stripped of
// every character outside [a-z0-9 -], then whitespace runs and repeated
// hyphens collapse into single hyphens. Identical inputs always produce the
// identical slug.
func Make(name, city string) string {
	source := name
	if city != "" {
		source = name + " " + city
	}
	source = strings.ToLower(source)

	var b strings.Builder
	b.Grow(len(source))
	for _, r := range source {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '-':
			b.WriteByte('-')
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
