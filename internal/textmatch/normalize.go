// Package textmatch provides text normalization and similarity scoring for
// comparing learner answers against expected answers.
package textmatch

import (
	"strings"
	"unicode"
)

// Punjabi script block preserved during normalization. Everything else that
// is not a letter, digit, or whitespace is stripped.
const (
	scriptLo = 0x0A80
	scriptHi = 0x0AFF
)

// Normalize prepares text for comparison: punctuation is removed (keeping
// alphanumerics and the Punjabi script block), whitespace runs collapse to
// single spaces, and the result is lowercased and trimmed.
// Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || (r >= scriptLo && r <= scriptHi) {
			b.WriteRune(r)
		}
	}

	return strings.ToLower(strings.Join(strings.Fields(b.String()), " "))
}
