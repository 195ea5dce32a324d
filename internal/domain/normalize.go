package domain

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a category name for sending:
//   - trims leading/trailing whitespace
//   - compresses any run of whitespace into one space
//
// Case, diacritics, hyphens, and apostrophes are preserved.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			r = ' '
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
