// Package slides provides the core slide reading logic: sentence-aware
// chunking of chapter text into bounded slides, a sliding window of slides
// around a word offset, book-level progress translation, and an adaptive
// pacing estimator for auto-advance.
package slides

import (
	"strings"
	"unicode"
)

// Sentences splits text into sentences on runs of '.', '!' or '?' followed
// by whitespace or end of input, keeping the punctuation attached. Each
// sentence is trimmed. Text without terminal punctuation comes back as a
// single sentence; empty or whitespace-only input yields nothing.
//
// This is a deliberate heuristic: abbreviations ("Dr. Smith"), decimals
// inside numbers, and ellipses are not special-cased.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var out []string
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}
		// Consume the full punctuation run.
		for i < len(runes) && isTerminal(runes[i]) {
			i++
		}
		// A run only ends a sentence when followed by whitespace or EOS;
		// "3.14" stays together.
		if i < len(runes) && !unicode.IsSpace(runes[i]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start:i])); s != "" {
			out = append(out, s)
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start = i
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
