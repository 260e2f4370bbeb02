package word

import (
	"errors"
	"testing"

	"splicer/internal/timestamp"
)

func TestNewCachesSyllables(t *testing.T) {
	calls := 0
	counter := func(string) int {
		calls++
		return 4
	}
	w := NewWithCounter("beautiful", timestamp.RangeFromMillis(0, 100), counter)
	if w.Syllables() != 4 || w.Syllables() != 4 {
		t.Errorf("Syllables() = %d, want 4", w.Syllables())
	}
	if calls != 1 {
		t.Errorf("counter called %d times, want 1", calls)
	}
}

func TestCalibratedSentinel(t *testing.T) {
	tests := []struct {
		name string
		w    Word
		want bool
	}{
		{"uncalibrated", Uncalibrated("hello"), false},
		{"zero width at zero", FromMillis("hello", 0, 0), false},
		{"real range", FromMillis("hello", 0, 500), true},
		{"zero width later", FromMillis("hello", 500, 500), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Calibrated(); got != tt.want {
				t.Errorf("Calibrated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetimedKeepsTextAndSyllables(t *testing.T) {
	w := FromMillis("beautiful", 0, 100)
	moved := w.Retimed(timestamp.RangeFromMillis(500, 900))
	if moved.Text() != "beautiful" {
		t.Errorf("Text() = %q", moved.Text())
	}
	if moved.Syllables() != w.Syllables() {
		t.Errorf("Syllables() = %d, want %d", moved.Syllables(), w.Syllables())
	}
	if moved.Span().Start.Millis() != 500 || moved.Span().End.Millis() != 900 {
		t.Errorf("Span() = %v, want 500-900", moved.Span())
	}
}

func TestMake(t *testing.T) {
	type cue struct {
		text       string
		start, end int64
	}
	cues := []cue{{"Hello", 0, 500}, {"world", 600, 1000}}
	words := Make(cues,
		func(c cue) string { return c.text },
		func(c cue) timestamp.Range { return timestamp.RangeFromMillis(c.start, c.end) },
	)
	if len(words) != 2 {
		t.Fatalf("Make produced %d words, want 2", len(words))
	}
	if words[1].Text() != "world" || words[1].Span().Start.Millis() != 600 {
		t.Errorf("Make[1] = %v", words[1])
	}
}

func TestSpan(t *testing.T) {
	words := []Word{FromMillis("a", 100, 200), FromMillis("b", 300, 900)}
	span, err := Span(words)
	if err != nil {
		t.Fatalf("Span error = %v", err)
	}
	if span.Start.Millis() != 100 || span.End.Millis() != 900 {
		t.Errorf("Span = %v, want 100-900", span)
	}
	if _, err := Span(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Span(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestPauses(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		want  [][2]int64
	}{
		{
			"single gap",
			[]Word{FromMillis("Hello", 0, 500), FromMillis("world", 600, 1000)},
			[][2]int64{{500, 600}},
		},
		{
			"no gaps",
			[]Word{FromMillis("a", 0, 500), FromMillis("b", 500, 1000)},
			nil,
		},
		{
			"overlap yields nothing",
			[]Word{FromMillis("a", 0, 600), FromMillis("b", 500, 1000)},
			nil,
		},
		{
			"multiple gaps",
			[]Word{FromMillis("a", 0, 100), FromMillis("b", 300, 400), FromMillis("c", 400, 500), FromMillis("d", 700, 800)},
			[][2]int64{{100, 300}, {500, 700}},
		},
		{"empty", nil, nil},
		{"single word", []Word{FromMillis("a", 0, 100)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pauses := Pauses(tt.words)
			if len(pauses) != len(tt.want) {
				t.Fatalf("Pauses returned %d ranges, want %d", len(pauses), len(tt.want))
			}
			for i, w := range tt.want {
				if pauses[i].Start.Millis() != w[0] || pauses[i].End.Millis() != w[1] {
					t.Errorf("pause %d = %v, want %d-%d", i, pauses[i], w[0], w[1])
				}
			}
		})
	}
}
