package textutil

import (
	"strings"
	"unicode"
)

// NormalizeKey converts a title or show name to its canonical grouping form.
// Letters are lowercased, digits, underscores, and spaces are kept, every
// other rune is dropped without acting as a separator, and whitespace runs
// collapse to a single space. "[The Matrix]" and "the matrix" normalize to
// the same key; "The.Matrix" becomes "thematrix".
func NormalizeKey(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	space := false
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r) || r == '_':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			space = true
		default:
			// punctuation drops out entirely
		}
	}
	return b.String()
}

// CollapseSpaces trims the string and reduces internal whitespace runs to a
// single space. Casing and punctuation are untouched.
func CollapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
