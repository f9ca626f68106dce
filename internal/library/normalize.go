package library

import (
	"strings"
	"unicode"
)

// NormalizeTitle reduces a display title to its duplicate-matching key:
// lowercase with everything but letters and digits stripped, so
// "Portal 2" and "PORTAL-2!" both become "portal2". Blank input yields "".
func NormalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
