package report

import "strings"

// Sanitize replaces control characters with '?' so manifest text echoed in
// messages and paths cannot inject terminal escape sequences.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F) {
			return '?'
		}
		return r
	}, s)
}
