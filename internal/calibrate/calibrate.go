// Package calibrate assigns timestamps to the added words a diff leaves
// untimed.
//
// It scans the diff for maximal runs of uncalibrated words, works out the
// time window each run can occupy from its calibrated neighbors, and splits
// that window syllable-weighted. When the window is too small the calibrator
// borrows time from the neighbors, bounded so a neighbor always keeps a
// minimum duration of its own. Even when borrowing cannot raise enough time
// the run is still timed over whatever was obtained; calibration always
// terminates with a fully-timed, non-overlapping sequence.
package calibrate

import (
	"splicer/internal/distribute"
	"splicer/internal/timestamp"
	"splicer/internal/worddiff"
)

// Phrase is a maximal run of uncalibrated records, with the indices of its
// nearest calibrated neighbors (-1 when the run touches a sequence edge).
type Phrase struct {
	First, Last int
	Left, Right int
	Syllables   int
}

// Len returns the number of words in the phrase.
func (p Phrase) Len() int { return p.Last - p.First + 1 }

// Phrases scans records for maximal runs of uncalibrated words. A neighbor is
// any record carrying real timing, removed words included: their spans stay
// in the list precisely so replacements can draw on the time they vacate.
func Phrases(records []worddiff.Record) []Phrase {
	var phrases []Phrase
	for i := 0; i < len(records); i++ {
		if !records[i].Uncalibrated() {
			continue
		}
		first := i
		syllables := 0
		for i < len(records) && records[i].Uncalibrated() {
			syllables += records[i].Word.Syllables()
			i++
		}
		phrases = append(phrases, Phrase{
			First:     first,
			Last:      i - 1,
			Left:      neighborBefore(records, first),
			Right:     neighborAfter(records, i-1),
			Syllables: syllables,
		})
	}
	return phrases
}

func neighborBefore(records []worddiff.Record, index int) int {
	for i := index - 1; i >= 0; i-- {
		if records[i].Word.Calibrated() {
			return i
		}
	}
	return -1
}

func neighborAfter(records []worddiff.Record, index int) int {
	for i := index + 1; i < len(records); i++ {
		if records[i].Word.Calibrated() {
			return i
		}
	}
	return -1
}

// Calibrate resolves every uncalibrated phrase in records and returns a new
// slice; the input is never modified. A diff with no uncalibrated words comes
// back as an identical copy.
func Calibrate(records []worddiff.Record, opts Options) []worddiff.Record {
	opts = opts.withDefaults()

	out := make([]worddiff.Record, len(records))
	copy(out, records)

	for _, phrase := range Phrases(out) {
		calibratePhrase(out, phrase, opts)
	}
	return out
}

func calibratePhrase(records []worddiff.Record, phrase Phrase, opts Options) {
	required := max(
		int64(phrase.Len())*opts.MinWordDurationMs,
		int64(phrase.Syllables)*opts.SpaceMsPerSyllable,
	)

	window := initialWindow(records, phrase, required, opts)
	if window.Duration() < required {
		window = borrowSpace(records, phrase, window, required, opts)
	}

	applyWindow(records, phrase, window)
}

// initialWindow determines the time budget before any borrowing.
func initialWindow(records []worddiff.Record, phrase Phrase, required int64, opts Options) timestamp.Range {
	switch {
	case phrase.Left >= 0 && phrase.Right >= 0:
		start := records[phrase.Left].Word.Span().End
		end := records[phrase.Right].Word.Span().Start
		if start.After(end) {
			// Overlapping neighbors leave no window at all.
			end = start
		}
		return timestamp.Range{Start: start, End: end}
	case phrase.Left >= 0:
		// Open-ended on the right: extend past the left neighbor by the
		// phrase's own requirement.
		start := records[phrase.Left].Word.Span().End
		return timestamp.Range{Start: start, End: start.Add(required)}
	case phrase.Right >= 0:
		// Open-ended on the left: reach back before the right neighbor,
		// clamped at the zero instant.
		end := records[phrase.Right].Word.Span().Start
		return timestamp.Range{Start: end.Sub(required), End: end}
	default:
		// Nothing in the sequence is timed; fall back to a default duration
		// per word from instant zero.
		duration := int64(phrase.Len()) * opts.DefaultWordDurationMs
		return timestamp.RangeFromMillis(0, duration)
	}
}

// applyWindow distributes the window across the phrase syllable-weighted and
// replaces each record with a calibrated copy.
func applyWindow(records []worddiff.Record, phrase Phrase, window timestamp.Range) {
	items := make([]distribute.Item, 0, phrase.Len())
	for i := phrase.First; i <= phrase.Last; i++ {
		items = append(items, distribute.Item{
			Text:   records[i].Word.Text(),
			Weight: int64(records[i].Word.Syllables()),
		})
	}

	// Weights are syllable counts, always >= 1, so Split cannot fail.
	ranges, err := distribute.Split(window, items)
	if err != nil {
		return
	}
	for k, i := 0, phrase.First; i <= phrase.Last; i++ {
		record := records[i]
		record.Word = record.Word.Retimed(ranges[k])
		records[i] = record
		k++
	}
}
