// Package textnorm canonicalizes free-text Greek queries so that the lexical
// scorer and the concept extractor compare like with like.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, replaces every rune that is neither a word
// character nor whitespace with a space, collapses whitespace runs and maps
// known spelling variants to their canonical accented form. It is a pure
// function: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		w = finalSigma(w)
		if canonical, ok := synonyms[w]; ok {
			w = canonical
		}
		words[i] = w
	}

	return strings.Join(words, " ")
}

// finalSigma rewrites a trailing medial sigma to the word-final form.
// strings.ToLower maps Σ to σ in every position, so uppercase input would
// otherwise produce tokens like "ωρεσ" that match nothing.
func finalSigma(word string) string {
	runes := []rune(word)
	if n := len(runes); n > 1 && runes[n-1] == 'σ' {
		runes[n-1] = 'ς'
		return string(runes)
	}
	return word
}

// Words returns the distinct-preserving token list of the normalized text.
func Words(text string) []string {
	n := Normalize(text)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}
