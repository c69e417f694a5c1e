package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortText(t *testing.T) {
	chunks := Split("Μία σύντομη πρόταση.", 400, 50)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Μία σύντομη πρόταση.", chunks[0])
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split("", 400, 50))
	assert.Empty(t, Split("   \n\t ", 400, 50))
}

func TestSplitInvalidSize(t *testing.T) {
	assert.Nil(t, Split("κείμενο", 0, 50))
	assert.Nil(t, Split("κείμενο", -5, 0))
}

func TestSplitMaxChunkSize(t *testing.T) {
	sentence := "Η πρακτική άσκηση διαρκεί διακόσιες σαράντα ώρες. "
	text := strings.Repeat(sentence, 40)

	chunks := Split(text, 200, 30)
	require.NotEmpty(t, chunks)

	for i, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 200, "chunk %d exceeds size", i)
		assert.NotEmpty(t, strings.TrimSpace(c))
	}
}

func TestSplitPrefersSentenceBoundary(t *testing.T) {
	sentence := "Αυτή είναι μία πρόταση. "
	text := strings.Repeat(sentence, 30)

	chunks := Split(text, 100, 0)
	require.Greater(t, len(chunks), 1)

	// every chunk but the last should end right after a sentence delimiter
	for i, c := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(strings.TrimSpace(c), "."), "chunk %d = %q", i, c)
	}
}

func TestSplitCoversAllText(t *testing.T) {
	sentence := "Οι φοιτητές καταθέτουν τα έγγραφα στη γραμματεία. "
	text := strings.TrimSpace(strings.Repeat(sentence, 25))

	chunks := Split(text, 150, 40)
	joined := strings.Join(chunks, " ")

	// overlap duplicates text but never loses it
	assert.GreaterOrEqual(t, len([]rune(joined)), len([]rune(text))-150)
	assert.Contains(t, chunks[0], "Οι φοιτητές")
	assert.Contains(t, chunks[len(chunks)-1], "γραμματεία")
}

func TestSplitGreekRuneSafety(t *testing.T) {
	// multi-byte runes must never be cut mid-encoding
	text := strings.Repeat("αβγδεζηθικλμνξο", 100)

	for _, c := range Split(text, 128, 16) {
		assert.True(t, strings.HasPrefix(c, "α") || strings.ContainsAny(c, "αβγδεζηθικλμνξο"))
		for _, r := range c {
			assert.NotEqual(t, rune(0xFFFD), r, "replacement rune indicates a split mid-character")
		}
	}
}
