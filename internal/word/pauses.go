package word

import "splicer/internal/timestamp"

// Pauses returns the gaps between consecutive words as ranges. Only strictly
// positive gaps are reported, so the result holds at most len(words)-1
// entries. The slice is materialized and freely re-iterable.
func Pauses(words []Word) []timestamp.Range {
	var pauses []timestamp.Range
	for i := 1; i < len(words); i++ {
		prevEnd := words[i-1].span.End
		nextStart := words[i].span.Start
		if nextStart.After(prevEnd) {
			pauses = append(pauses, timestamp.Range{Start: prevEnd, End: nextStart})
		}
	}
	return pauses
}
