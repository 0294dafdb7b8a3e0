// Package textutil trims user-visible strings to platform size limits
// without splitting multi-byte UTF-8 sequences.
package textutil

import "unicode/utf8"

// Clip returns s cut to at most max bytes, backing the cut off to the
// nearest rune boundary so the result is always valid UTF-8.
func Clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 0 {
		max = 0
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// Ellipsis returns s unchanged when it fits in max bytes, otherwise clips
// it and appends "..." so the result never exceeds max.
func Ellipsis(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return Clip(s, max-3) + "..."
}
