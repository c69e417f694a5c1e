package generator

import "unicode"

// ValidGreek reports whether text is plausibly a Greek-language answer.
// Only letters are inspected: Greek letters (including polytonic) and basic
// Latin are expected, since Latin appears legitimately in emails, URLs and
// terms like "gov.gr". Letters of any other script count as foreign.
// The text is rejected when foreign letters exceed tolerance as a fraction
// of all letters, or when it contains no letters at all. Digits, punctuation,
// whitespace, symbols and emoji never count against the text.
func ValidGreek(text string, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = 0.15
	}

	letters := 0
	foreign := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if !isExpectedLetter(r) {
			foreign++
		}
	}

	if letters == 0 {
		return false
	}
	return float64(foreign)/float64(letters) <= tolerance
}

func isExpectedLetter(r rune) bool {
	switch {
	case r >= 0x0370 && r <= 0x03FF: // Greek and Coptic
		return true
	case r >= 0x1F00 && r <= 0x1FFF: // Greek Extended (polytonic)
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return false
}
