// Package word models a timed text unit and the convenience constructors that
// build timed sequences from raw text.
package word

import (
	"errors"
	"fmt"

	"splicer/internal/distribute"
	"splicer/internal/syllable"
	"splicer/internal/timestamp"
)

// ErrEmptyInput reports an operation that needs at least one word.
var ErrEmptyInput = errors.New("empty word sequence")

// Word is a text unit with an associated time range. Words are immutable:
// re-timing a word means constructing a new one. The syllable count is fixed
// at construction so it stays consistent for the life of the value.
type Word struct {
	text      string
	span      timestamp.Range
	syllables int
}

// New constructs a Word using the default syllable estimator.
func New(text string, span timestamp.Range) Word {
	return NewWithCounter(text, span, nil)
}

// NewWithCounter constructs a Word with an explicit syllable counter.
func NewWithCounter(text string, span timestamp.Range, counter syllable.Counter) Word {
	if counter == nil {
		counter = syllable.Estimate
	}
	return Word{text: text, span: span, syllables: counter(text)}
}

// FromMillis constructs a Word from raw millisecond bounds.
func FromMillis(text string, start, end int64) Word {
	return New(text, timestamp.RangeFromMillis(start, end))
}

// Uncalibrated constructs a Word whose timing is not yet known. The sentinel
// is the zero-width range at instant zero.
func Uncalibrated(text string) Word {
	return New(text, timestamp.Range{})
}

// Text returns the word's text.
func (w Word) Text() string { return w.text }

// Span returns the word's time range.
func (w Word) Span() timestamp.Range { return w.span }

// Syllables returns the syllable count fixed at construction.
func (w Word) Syllables() int { return w.syllables }

// Calibrated reports whether the word carries real timing. The zero-width
// range at instant zero is the uncalibrated sentinel.
func (w Word) Calibrated() bool {
	return w.span.Start.Millis() != 0 || w.span.End.Millis() != 0
}

// Retimed returns a copy of the word carrying a new span. Text and syllable
// count are preserved.
func (w Word) Retimed(span timestamp.Range) Word {
	return Word{text: w.text, span: span, syllables: w.syllables}
}

func (w Word) String() string {
	return fmt.Sprintf("%s @ %d: %d - %d", w.text, w.syllables, w.span.Start.Millis(), w.span.End.Millis())
}

// Make converts an arbitrary slice into Words by selecting text and span from
// each element.
func Make[T any](items []T, text func(T) string, span func(T) timestamp.Range) []Word {
	words := make([]Word, len(items))
	for i, item := range items {
		words[i] = New(text(item), span(item))
	}
	return words
}

// Texts returns the texts of a word sequence, in order.
func Texts(words []Word) []string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.text
	}
	return texts
}

// Span returns the range covered by a word sequence, from the first word's
// start to the last word's end.
func Span(words []Word) (timestamp.Range, error) {
	if len(words) == 0 {
		return timestamp.Range{}, fmt.Errorf("word span: %w", ErrEmptyInput)
	}
	return timestamp.NewRange(words[0].span.Start, words[len(words)-1].span.End)
}

// DistributeEvenly splits span across texts with uniform weights.
func DistributeEvenly(texts []string, span timestamp.Range) ([]Word, error) {
	return fromItems(distribute.ByEvenWeight(texts), span, nil)
}

// DistributeByCharacters splits span across texts weighted by rune count.
func DistributeByCharacters(texts []string, span timestamp.Range) ([]Word, error) {
	return fromItems(distribute.ByCharacters(texts), span, nil)
}

// DistributeBySyllables splits span across texts weighted by syllable count.
func DistributeBySyllables(texts []string, span timestamp.Range, counter syllable.Counter) ([]Word, error) {
	return fromItems(distribute.BySyllables(texts, counter), span, counter)
}

func fromItems(items []distribute.Item, span timestamp.Range, counter syllable.Counter) ([]Word, error) {
	ranges, err := distribute.Split(span, items)
	if err != nil {
		return nil, err
	}
	words := make([]Word, len(items))
	for i, item := range items {
		words[i] = NewWithCounter(item.Text, ranges[i], counter)
	}
	return words, nil
}
