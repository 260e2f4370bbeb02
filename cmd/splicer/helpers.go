package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"splicer/internal/srt"
	"splicer/internal/word"
)

// loadReference reads a timed word-level SRT transcript.
func loadReference(path string) ([]word.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference: %w", err)
	}
	words := srt.Parse(data)
	if len(words) == 0 {
		return nil, fmt.Errorf("reference %s contains no readable cues", path)
	}
	return words, nil
}

// loadCandidate reads the edited transcript. An .srt file is parsed as cues
// (any timing it carries is ignored by the diff); anything else is treated as
// plain text split on whitespace.
func loadCandidate(path string) ([]word.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidate: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		words := srt.Parse(data)
		if len(words) == 0 {
			return nil, fmt.Errorf("candidate %s contains no readable cues", path)
		}
		return words, nil
	}
	fields := strings.Fields(string(data))
	words := make([]word.Word, len(fields))
	for i, text := range fields {
		words[i] = word.Uncalibrated(text)
	}
	return words, nil
}

func formatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}

func wordRows(words []word.Word) [][]string {
	rows := make([][]string, len(words))
	for i, w := range words {
		span := w.Span()
		rows[i] = []string{
			strconv.Itoa(i + 1),
			w.Text(),
			strconv.Itoa(w.Syllables()),
			formatMillis(span.Start.Millis()),
			formatMillis(span.End.Millis()),
			formatMillis(span.Duration()),
		}
	}
	return rows
}

func renderWords(words []word.Word) string {
	return renderTable(
		[]string{"#", "Word", "Syllables", "Start (ms)", "End (ms)", "Duration (ms)"},
		wordRows(words),
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight},
	)
}
