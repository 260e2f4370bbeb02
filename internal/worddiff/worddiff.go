// Package worddiff aligns two word sequences by text and classifies each word
// as unchanged, added, or removed.
//
// Alignment is a longest-common-subsequence over the texts only; timing plays
// no part. Unchanged and removed records keep the reference word's original
// timing, added records come out uncalibrated and are resolved later by the
// calibrate package.
package worddiff

import (
	"fmt"

	"splicer/internal/timestamp"
	"splicer/internal/word"
)

// Op classifies a diff record.
type Op int

const (
	OpUnchanged Op = iota
	OpAdded
	OpRemoved
)

// Marker returns the one-character diff prefix for the op.
func (op Op) Marker() string {
	switch op {
	case OpAdded:
		return "+"
	case OpRemoved:
		return "-"
	default:
		return " "
	}
}

func (op Op) String() string {
	switch op {
	case OpAdded:
		return "added"
	case OpRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// Record is one classified word. Index is the word's position in its source
// sequence: the reference for unchanged/removed, the candidate for added.
type Record struct {
	Op    Op
	Index int
	Word  word.Word
}

// Uncalibrated reports whether the record still needs timing.
func (r Record) Uncalibrated() bool {
	return r.Op == OpAdded && !r.Word.Calibrated()
}

func (r Record) String() string {
	span := r.Word.Span()
	return fmt.Sprintf("%s [%d] %s @ %d: %d - %d",
		r.Op.Marker(), r.Index, r.Word.Text(), r.Word.Syllables(),
		span.Start.Millis(), span.End.Millis())
}

// Compare aligns candidate against reference by text equality. Records come
// out in candidate order with removed reference words inserted where they fall
// relative to the surrounding matches; between two matches the removed run
// precedes the added run. When several longest alignments exist the
// leftmost-greedy one wins, so repeated words behave deterministically.
func Compare(reference, candidate []word.Word) []Record {
	n, m := len(reference), len(candidate)

	// lcs[i][j] is the LCS length of reference[i:] and candidate[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if reference[i].Text() == candidate[j].Text() {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	records := make([]Record, 0, max(n, m))
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case reference[i].Text() == candidate[j].Text() && lcs[i][j] == lcs[i+1][j+1]+1:
			records = append(records, Record{Op: OpUnchanged, Index: i, Word: reference[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			records = append(records, Record{Op: OpRemoved, Index: i, Word: reference[i]})
			i++
		default:
			records = append(records, Record{Op: OpAdded, Index: j, Word: uncalibrated(candidate[j])})
			j++
		}
	}
	for ; i < n; i++ {
		records = append(records, Record{Op: OpRemoved, Index: i, Word: reference[i]})
	}
	for ; j < m; j++ {
		records = append(records, Record{Op: OpAdded, Index: j, Word: uncalibrated(candidate[j])})
	}
	return records
}

// uncalibrated strips any timing the candidate word carried, keeping its text
// and cached syllable count.
func uncalibrated(w word.Word) word.Word {
	return w.Retimed(timestamp.Range{})
}

// Words extracts the words of the records that survive in the output sequence
// (everything but removed), in order.
func Words(records []Record) []word.Word {
	words := make([]word.Word, 0, len(records))
	for _, record := range records {
		if record.Op == OpRemoved {
			continue
		}
		words = append(words, record.Word)
	}
	return words
}
