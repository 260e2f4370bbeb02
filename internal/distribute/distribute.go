// Package distribute partitions a time range among weighted items.
//
// The engine backs every timing decision in the library: splice entry points,
// phrase calibration, and the Word constructors all reduce to "split this span
// proportionally". Output ranges are contiguous, non-overlapping, and cover
// the input span exactly; integer rounding is settled with the
// largest-remainder method so no millisecond is lost or invented.
package distribute

import (
	"fmt"
	"sort"

	"splicer/internal/syllable"
	"splicer/internal/timestamp"
)

// Item is a (text, weight) pair. Weight is non-negative; what the text means
// is up to the caller.
type Item struct {
	Text   string
	Weight int64
}

// ByEvenWeight builds items with uniform weight 1.
func ByEvenWeight(words []string) []Item {
	items := make([]Item, len(words))
	for i, word := range words {
		items[i] = Item{Text: word, Weight: 1}
	}
	return items
}

// ByCharacters builds items weighted by rune count.
func ByCharacters(words []string) []Item {
	items := make([]Item, len(words))
	for i, word := range words {
		items[i] = Item{Text: word, Weight: int64(len([]rune(word)))}
	}
	return items
}

// BySyllables builds items weighted by syllable count. A nil counter falls
// back to the default estimator; the counter contract guarantees a minimum
// weight of 1.
func BySyllables(words []string, counter syllable.Counter) []Item {
	if counter == nil {
		counter = syllable.Estimate
	}
	items := make([]Item, len(words))
	for i, word := range words {
		weight := int64(counter(word))
		if weight < 1 {
			weight = 1
		}
		items[i] = Item{Text: word, Weight: weight}
	}
	return items
}

// Split partitions total into one sub-range per item, each duration
// proportional to the item's share of the summed weights. Zero items yields an
// empty result for any range. If every weight is zero the span is split
// evenly. A negative weight is rejected.
func Split(total timestamp.Range, items []Item) ([]timestamp.Range, error) {
	if len(items) == 0 {
		return nil, nil
	}

	var weightSum int64
	for i, item := range items {
		if item.Weight < 0 {
			return nil, fmt.Errorf("distribute: item %d (%q) has negative weight %d", i, item.Text, item.Weight)
		}
		weightSum += item.Weight
	}

	weights := make([]int64, len(items))
	if weightSum == 0 {
		// All-zero weights: fall back to an even split.
		for i := range weights {
			weights[i] = 1
		}
		weightSum = int64(len(items))
	} else {
		for i, item := range items {
			weights[i] = item.Weight
		}
	}

	durations := apportion(total.Duration(), weights, weightSum)

	ranges := make([]timestamp.Range, len(items))
	cursor := total.Start
	for i, duration := range durations {
		end := cursor.Add(duration)
		ranges[i] = timestamp.Range{Start: cursor, End: end}
		cursor = end
	}
	// Rounding never leaks: the last edge lands exactly on total.End.
	ranges[len(ranges)-1].End = total.End
	return ranges, nil
}

// apportion divides duration into integer shares proportional to weights using
// the largest-remainder method. Ideal shares are floored, then the leftover
// milliseconds go one each to the largest fractional remainders, earlier index
// first on ties.
func apportion(duration int64, weights []int64, weightSum int64) []int64 {
	shares := make([]int64, len(weights))
	remainders := make([]int64, len(weights))

	var assigned int64
	for i, weight := range weights {
		product := duration * weight
		shares[i] = product / weightSum
		remainders[i] = product % weightSum
		assigned += shares[i]
	}

	leftover := duration - assigned
	if leftover <= 0 {
		return shares
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for i := int64(0); i < leftover; i++ {
		shares[order[i]]++
	}
	return shares
}
