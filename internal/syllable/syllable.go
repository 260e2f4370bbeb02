// Package syllable estimates how many syllables a word contains.
//
// The estimate drives syllable-weighted time distribution. Callers that have a
// better counter (a dictionary, a language-specific model) can supply their own
// Counter; the default is a vowel-group heuristic tuned for English.
package syllable

import (
	"strings"
	"unicode"
)

// Counter maps a word to a positive syllable count. Implementations must
// return at least 1 for any input so no word weighs zero.
type Counter func(text string) int

var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true,
}

// Estimate is the default Counter. It counts maximal vowel groups, discounts a
// trailing silent "e", and never returns less than 1.
func Estimate(text string) int {
	word := normalize(text)
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := vowels[r]
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	// A final "e" is usually silent ("phrase", "time") unless it carries the
	// only vowel sound ("the") or closes a consonant-le cluster ("table").
	if count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		if len(word) >= 2 && !vowels[rune(word[len(word)-2])] {
			count--
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}

// Total sums the estimate over a list of words using the given counter.
func Total(counter Counter, words []string) int {
	if counter == nil {
		counter = Estimate
	}
	total := 0
	for _, word := range words {
		total += counter(word)
	}
	return total
}

func normalize(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
