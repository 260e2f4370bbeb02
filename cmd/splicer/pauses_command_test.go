package main

import (
	"testing"

	"splicer/internal/word"
)

func TestPausesListsGaps(t *testing.T) {
	dir := t.TempDir()
	reference := writeSRT(t, dir, "reference.srt", []word.Word{
		timedWord("Hello", 0, 400),
		timedWord("world", 600, 1000),
		timedWord("again", 1000, 1500),
	})

	out, _, err := runCLI(t, []string{"pauses", reference}, missingConfigPath(t))
	if err != nil {
		t.Fatalf("pauses: %v", err)
	}
	requireContains(t, out, "00:00:00.400")
	requireContains(t, out, "00:00:00.600")
	requireContains(t, out, "1 pauses across 3 words")
}

func TestPausesMinDurationFilter(t *testing.T) {
	dir := t.TempDir()
	reference := writeSRT(t, dir, "reference.srt", []word.Word{
		timedWord("Hello", 0, 400),
		timedWord("world", 600, 1000),
	})

	out, _, err := runCLI(t, []string{"pauses", reference, "--min-duration", "300"}, missingConfigPath(t))
	if err != nil {
		t.Fatalf("pauses: %v", err)
	}
	requireContains(t, out, "0 pauses across 2 words")
	requireNotContains(t, out, "00:00:00.400")
}
