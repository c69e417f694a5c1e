// Package chunker splits long text into overlapping, sentence-boundary-aware
// passages sized for embedding.
package chunker

import "strings"

// sentence-ending delimiters, searched backward from a tentative cut point
var boundaries = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// backtrackWindow limits how far back a cut may move to land on a sentence
// boundary.
const backtrackWindow = 100

// Split cuts text into passages of at most size runes. When a cut would fall
// mid-sentence, the split point moves back (up to backtrackWindow runes) to
// the nearest sentence-ending delimiter. Consecutive passages overlap by
// overlap runes so context at the boundary is not lost.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 2
	}

	runes := []rune(text)
	var chunks []string

	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			if c := strings.TrimSpace(string(runes[start:])); c != "" {
				chunks = append(chunks, c)
			}
			break
		}

		cut := boundaryCut(runes, start, end)

		if c := strings.TrimSpace(string(runes[start:cut])); c != "" {
			chunks = append(chunks, c)
		}

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}

// boundaryCut searches backward from end for a sentence delimiter and returns
// the position just after it, or end when none is close enough.
func boundaryCut(runes []rune, start, end int) int {
	windowStart := end - backtrackWindow
	if windowStart < start {
		windowStart = start
	}
	window := string(runes[windowStart:end])

	bestIdx := -1
	for _, delim := range boundaries {
		if i := strings.LastIndex(window, delim); i > bestIdx {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return end
	}

	// index within window is in bytes; convert the prefix back to runes
	prefixRunes := len([]rune(window[:bestIdx]))
	return windowStart + prefixRunes + 2 // keep the delimiter with the chunk
}
