// Package srt reads and writes word-level SubRip transcripts.
//
// Each cue carries one word, the shape word-level ASR aligners emit. Parsing
// is lenient the way players are: malformed blocks are skipped rather than
// failing the whole file. All I/O stays with the caller; this package only
// transforms bytes.
package srt

import (
	"fmt"
	"strconv"
	"strings"

	"splicer/internal/timestamp"
	"splicer/internal/word"
)

// Parse reads SRT content into a word sequence, one word per cue. Cues whose
// index, timing, or text cannot be read are skipped.
func Parse(data []byte) []word.Word {
	content := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if content == "" {
		return nil
	}

	var words []word.Word
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			continue
		}
		startText, endText, ok := strings.Cut(lines[1], "-->")
		if !ok {
			continue
		}
		start, err := parseTimestamp(startText)
		if err != nil {
			continue
		}
		end, err := parseTimestamp(endText)
		if err != nil {
			continue
		}
		span, err := timestamp.NewRange(start, end)
		if err != nil {
			continue
		}
		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" {
			continue
		}
		words = append(words, word.New(text, span))
	}
	return words
}

// Format renders a word sequence as SRT content, one cue per word, indexed
// from 1.
func Format(words []word.Word) []byte {
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			sb.WriteString("\n")
		}
		span := w.Span()
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n", formatTimestamp(span.Start), formatTimestamp(span.End))
		sb.WriteString(w.Text())
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// parseTimestamp reads the SRT HH:MM:SS,mmm form. A period separator is
// tolerated.
func parseTimestamp(value string) (timestamp.Timestamp, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return timestamp.Timestamp{}, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ",", ".")
	return timestamp.Parse(value)
}

func formatTimestamp(ts timestamp.Timestamp) string {
	// SRT uses a comma for the millisecond separator.
	return strings.Replace(ts.String(), ".", ",", 1)
}
