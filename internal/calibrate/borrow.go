package calibrate

import (
	"splicer/internal/timestamp"
	"splicer/internal/worddiff"
)

// slack is the time a neighbor can donate to a too-small window. Shift moves
// the neighbor away from the phrase into the gap toward its own far neighbor,
// preserving its duration; shrink cuts the neighbor's duration itself.
type slack struct {
	shift  int64
	shrink int64
}

func (s slack) total() int64 { return s.shift + s.shrink }

// borrowSpace enlarges the window by taking time from the phrase's neighbors.
// The slackier neighbor is tapped first. A neighbor never drops below the
// minimum word duration and never recedes past the midpoint between itself
// and its own far neighbor. Donating records are updated in place; the
// returned window is the largest obtainable, which may still be below the
// requirement (the degraded outcome).
func borrowSpace(records []worddiff.Record, phrase Phrase, window timestamp.Range, required int64, opts Options) timestamp.Range {
	need := required - window.Duration()

	var left, right slack
	if phrase.Left >= 0 {
		left = neighborSlack(records, phrase.Left, -1, opts)
	}
	if phrase.Right >= 0 {
		right = neighborSlack(records, phrase.Right, +1, opts)
	}

	takeLeft, takeRight := planBorrow(need, left.total(), right.total())

	if takeLeft > 0 {
		window.Start = donate(records, phrase.Left, -1, takeLeft, left)
	}
	if takeRight > 0 {
		window.End = donate(records, phrase.Right, +1, takeRight, right)
	}
	if window.End.Before(window.Start) {
		// Overlapping neighbors can leave nothing even after borrowing.
		window.End = window.Start
	}
	return window
}

// neighborSlack measures how much the record at index can give. Direction is
// -1 for a left neighbor (which recedes toward earlier time) and +1 for a
// right neighbor.
func neighborSlack(records []worddiff.Record, index, direction int, opts Options) slack {
	span := records[index].Word.Span()
	duration := span.Duration()

	shrink := min(int64(opts.MaxBorrowFraction*float64(duration)), duration-opts.MinWordDurationMs)
	shrink = max(0, shrink)

	var gap int64
	if direction < 0 {
		// Receding left: bounded by the midpoint of the gap to the far
		// neighbor, or to the zero instant when none exists.
		if far := neighborBefore(records, index); far >= 0 {
			gap = span.Start.Millis() - records[far].Word.Span().End.Millis()
		} else {
			gap = span.Start.Millis()
		}
	} else {
		// Receding right: never extend past the far neighbor's midpoint, and
		// never extend the sequence itself.
		if far := neighborAfter(records, index); far >= 0 {
			gap = records[far].Word.Span().Start.Millis() - span.End.Millis()
		}
	}

	return slack{shift: max(0, gap) / 2, shrink: shrink}
}

// planBorrow splits the needed amount across the two donors, slackier first.
func planBorrow(need, leftAvail, rightAvail int64) (takeLeft, takeRight int64) {
	if need <= 0 {
		return 0, 0
	}
	if leftAvail >= rightAvail {
		takeLeft = min(need, leftAvail)
		takeRight = min(need-takeLeft, rightAvail)
	} else {
		takeRight = min(need, rightAvail)
		takeLeft = min(need-takeRight, leftAvail)
	}
	return takeLeft, takeRight
}

// donate updates the neighbor's record, shifting before shrinking so the
// neighbor keeps as much of its duration as the donation allows. Returns the
// neighbor's new edge facing the phrase.
func donate(records []worddiff.Record, index, direction int, amount int64, available slack) timestamp.Timestamp {
	record := records[index]
	span := record.Word.Span()

	shift := min(amount, available.shift)
	var updated timestamp.Range
	if direction < 0 {
		updated = timestamp.Range{
			Start: span.Start.Sub(shift),
			End:   span.End.Sub(amount),
		}
	} else {
		updated = timestamp.Range{
			Start: span.Start.Add(amount),
			End:   span.End.Add(shift),
		}
	}

	record.Word = record.Word.Retimed(updated)
	records[index] = record

	if direction < 0 {
		return updated.End
	}
	return updated.Start
}
