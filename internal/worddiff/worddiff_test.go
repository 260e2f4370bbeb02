package worddiff

import (
	"strings"
	"testing"

	"splicer/internal/word"
)

// render flattens records into "op:text" tokens for compact comparison.
func render(records []Record) string {
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.Op.Marker() + r.Word.Text()
	}
	return strings.Join(parts, " ")
}

func timed(texts string, bounds ...[2]int64) []word.Word {
	fields := strings.Fields(texts)
	words := make([]word.Word, len(fields))
	for i, text := range fields {
		var start, end int64
		if i < len(bounds) {
			start, end = bounds[i][0], bounds[i][1]
		}
		words[i] = word.FromMillis(text, start, end)
	}
	return words
}

func untimed(texts string) []word.Word {
	fields := strings.Fields(texts)
	words := make([]word.Word, len(fields))
	for i, text := range fields {
		words[i] = word.Uncalibrated(text)
	}
	return words
}

func TestCompareIdentical(t *testing.T) {
	reference := timed("Hello world", [2]int64{0, 500}, [2]int64{600, 1000})
	records := Compare(reference, untimed("Hello world"))

	if got, want := render(records), " Hello  world"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	// Unchanged records keep the reference timing.
	if records[1].Word.Span().Start.Millis() != 600 {
		t.Errorf("unchanged word lost its timing: %v", records[1].Word)
	}
}

func TestCompareAllRemoved(t *testing.T) {
	reference := timed("Hello world", [2]int64{0, 500}, [2]int64{600, 1000})
	records := Compare(reference, nil)

	if got, want := render(records), "-Hello -world"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	// Removed records keep timing for traceability.
	if records[0].Word.Span().End.Millis() != 500 {
		t.Errorf("removed word lost its timing: %v", records[0].Word)
	}
}

func TestCompareAllAdded(t *testing.T) {
	records := Compare(nil, untimed("Hello world"))

	if got, want := render(records), "+Hello +world"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	for _, r := range records {
		if !r.Uncalibrated() {
			t.Errorf("record %v should be uncalibrated", r)
		}
	}
}

func TestCompareInsertion(t *testing.T) {
	reference := timed("Hello world", [2]int64{0, 500}, [2]int64{600, 1000})
	records := Compare(reference, untimed("Hello beautiful world"))

	if got, want := render(records), " Hello +beautiful  world"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	if !records[1].Uncalibrated() {
		t.Error("added word should be uncalibrated")
	}
}

func TestCompareReplacementEmitsRemovedFirst(t *testing.T) {
	reference := timed("The Big Brown Fox",
		[2]int64{0, 200}, [2]int64{200, 400}, [2]int64{400, 600}, [2]int64{600, 800})
	records := Compare(reference, untimed("The Big Red Fox"))

	if got, want := render(records), " The  Big -Brown +Red  Fox"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
}

func TestCompareStripsCandidateTiming(t *testing.T) {
	reference := timed("Hello", [2]int64{0, 500})
	candidate := timed("Hello world", [2]int64{0, 500}, [2]int64{900, 1300})
	records := Compare(reference, candidate)

	if got, want := render(records), " Hello +world"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	if records[1].Word.Calibrated() {
		t.Errorf("added word kept candidate timing: %v", records[1].Word)
	}
}

func TestCompareRepeatedWordsLeftmostGreedy(t *testing.T) {
	reference := timed("a b a", [2]int64{0, 100}, [2]int64{100, 200}, [2]int64{200, 300})
	records := Compare(reference, untimed("a a"))

	if got, want := render(records), " a -b  a"; got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
	// The first unchanged "a" must be the first reference occurrence.
	if records[0].Index != 0 || records[2].Index != 2 {
		t.Errorf("indices = %d, %d, want 0, 2", records[0].Index, records[2].Index)
	}
}

func TestCompareIndices(t *testing.T) {
	reference := timed("x y", [2]int64{0, 100}, [2]int64{100, 200})
	records := Compare(reference, untimed("y z"))

	// x removed (ref index 0), y unchanged (ref index 1), z added (cand index 1).
	want := []struct {
		op    Op
		index int
	}{{OpRemoved, 0}, {OpUnchanged, 1}, {OpAdded, 1}}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		if records[i].Op != w.op || records[i].Index != w.index {
			t.Errorf("record %d = %v/%d, want %v/%d", i, records[i].Op, records[i].Index, w.op, w.index)
		}
	}
}

func TestWords(t *testing.T) {
	reference := timed("x y", [2]int64{0, 100}, [2]int64{100, 200})
	records := Compare(reference, untimed("y z"))
	words := Words(records)
	if len(words) != 2 || words[0].Text() != "y" || words[1].Text() != "z" {
		t.Errorf("Words = %v, want [y z]", words)
	}
}

func TestRecordString(t *testing.T) {
	records := Compare(timed("Hello", [2]int64{0, 500}), untimed("Hello world"))
	if got := records[0].String(); !strings.HasPrefix(got, "  [0] Hello") {
		t.Errorf("String() = %q, want unchanged marker and index", got)
	}
	if got := records[1].String(); !strings.HasPrefix(got, "+ [1] world") {
		t.Errorf("String() = %q, want added marker", got)
	}
}
