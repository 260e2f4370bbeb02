package word

import (
	"splicer/internal/distribute"
	"splicer/internal/syllable"
	"splicer/internal/timestamp"
)

// SpliceEvenly re-times a replacement word list across the full span of the
// reference sequence, giving every word an equal share.
func SpliceEvenly(reference []Word, texts []string) ([]Word, error) {
	span, err := Span(reference)
	if err != nil {
		return nil, err
	}
	return DistributeEvenly(texts, span)
}

// SpliceByCharacters re-times a replacement word list across the reference
// span, weighting by character count.
func SpliceByCharacters(reference []Word, texts []string) ([]Word, error) {
	span, err := Span(reference)
	if err != nil {
		return nil, err
	}
	return DistributeByCharacters(texts, span)
}

// SpliceBySyllables re-times a replacement word list across the reference
// span, weighting by syllable count.
func SpliceBySyllables(reference []Word, texts []string, counter syllable.Counter) ([]Word, error) {
	span, err := Span(reference)
	if err != nil {
		return nil, err
	}
	return DistributeBySyllables(texts, span, counter)
}

// GroupByReference assigns each spliced word to the reference word it lines up
// with best. The result is parallel to reference: entry i holds the spliced
// words attached to reference[i], in splice order.
//
// A spliced word scores each reference word by how much of the spliced word's
// own span the reference covers, discounted by the syllables already assigned
// to that reference word so long replacements spread across dense references
// instead of piling onto one.
func GroupByReference(reference, spliced []Word) [][]Word {
	groups := make([][]Word, len(reference))
	if len(reference) == 0 {
		return groups
	}
	occupancy := make([]int, len(reference))

	for _, w := range spliced {
		best := 0
		bestScore := -1.0
		for i, ref := range reference {
			score := w.span.IntersectionPercent(ref.span) / float64(occupancy[i]+1)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		groups[best] = append(groups[best], w)
		occupancy[best] += w.syllables
	}
	return groups
}

// Retime moves a word sequence onto a new span. Existing durations act as the
// weights, so the original rhythm survives the move; an all-zero-duration
// sequence falls back to an even split.
func Retime(words []Word, span timestamp.Range) ([]Word, error) {
	items := make([]distribute.Item, len(words))
	for i, w := range words {
		items[i] = distribute.Item{Text: w.text, Weight: w.span.Duration()}
	}
	ranges, err := distribute.Split(span, items)
	if err != nil {
		return nil, err
	}
	retimed := make([]Word, len(words))
	for i, w := range words {
		retimed[i] = w.Retimed(ranges[i])
	}
	return retimed, nil
}
