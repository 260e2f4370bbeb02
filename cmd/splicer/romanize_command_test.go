package main

import (
	"strings"
	"testing"
)

func TestRomanizeWords(t *testing.T) {
	out, _, err := runCLI(t, []string{"romanize", "café", "Łódź"}, "")
	if err != nil {
		t.Fatalf("romanize: %v", err)
	}
	if got := strings.TrimSpace(out); got != "cafe Lodz" {
		t.Fatalf("romanize output = %q, want %q", got, "cafe Lodz")
	}
}

func TestRomanizeWithSyllables(t *testing.T) {
	out, _, err := runCLI(t, []string{"romanize", "--syllables", "beautiful"}, "")
	if err != nil {
		t.Fatalf("romanize: %v", err)
	}
	requireContains(t, out, "beautiful")
	requireContains(t, out, "Syllables")
	requireContains(t, out, "3")
}
