package timestamp

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a range whose start follows its end.
var ErrInvalidRange = errors.New("invalid range")

// Range is an ordered pair of instants. Invariant: Start never follows End.
// The zero value is the empty range at the zero instant.
type Range struct {
	Start Timestamp
	End   Timestamp
}

// NewRange validates and constructs a Range.
func NewRange(start, end Timestamp) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: start %s after end %s", ErrInvalidRange, start, end)
	}
	return Range{Start: start, End: end}, nil
}

// RangeFromMillis constructs a Range from millisecond counts, clamping
// negatives to zero. Start and end are swapped if supplied out of order.
func RangeFromMillis(start, end int64) Range {
	if end < start {
		start, end = end, start
	}
	return Range{Start: FromMillis(start), End: FromMillis(end)}
}

// Duration returns the span of the range in milliseconds.
func (r Range) Duration() int64 {
	return r.End.ms - r.Start.ms
}

// IsZero reports whether the range has zero duration.
func (r Range) IsZero() bool {
	return r.Duration() == 0
}

// Distance returns the gap between the nearest edges of two ranges in
// milliseconds, or 0 when they touch or overlap.
func (r Range) Distance(other Range) int64 {
	if r.Start.ms < other.Start.ms {
		return max(0, other.Start.ms-r.End.ms)
	}
	return max(0, r.Start.ms-other.End.ms)
}

// IntersectionDuration returns the length of the overlap between two ranges
// in milliseconds, or 0 when they are disjoint.
func (r Range) IntersectionDuration(other Range) int64 {
	latestStart := max(r.Start.ms, other.Start.ms)
	earliestEnd := min(r.End.ms, other.End.ms)
	return max(0, earliestEnd-latestStart)
}

// IntersectionPercent returns the fraction of this range's own duration that
// overlaps other, in [0, 1]. A zero-duration receiver reports 1 when its point
// lies inside other and 0 otherwise.
func (r Range) IntersectionPercent(other Range) float64 {
	duration := r.Duration()
	if duration == 0 {
		if r.Start.ms >= other.Start.ms && r.Start.ms <= other.End.ms {
			return 1
		}
		return 0
	}
	return float64(r.IntersectionDuration(other)) / float64(duration)
}

// String formats the range as "start - end" using the HH:MM:SS.mmm form.
func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}
