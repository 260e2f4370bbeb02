// Package romanize reduces text to a Latin-script approximation.
//
// It is a convenience pass-through for callers preparing mixed-script
// transcripts: combining marks are stripped after canonical decomposition and
// the handful of Latin letters without decompositions are transliterated.
// Scripts with no Latin mapping pass through unchanged rather than erroring.
package romanize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var substitutions = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "Th",
	"ð", "d", "Ð", "D",
)

// String returns the Latin-script rendering of text. Input that cannot be
// transformed comes back unchanged.
func String(text string) string {
	stripped, _, err := transform.String(markStripper, text)
	if err != nil {
		return text
	}
	return substitutions.Replace(stripped)
}

// Words romanizes each word of a slice, preserving order.
func Words(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = String(w)
	}
	return out
}
