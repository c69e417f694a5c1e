package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKB = `[
  {
    "id": 1,
    "category": "Ώρες",
    "question": "Πόσες ώρες χρειάζομαι;",
    "answer": "240 ώρες.",
    "keywords": ["ώρες", "240"]
  },
  {
    "id": 2,
    "category": "Έγγραφα",
    "question": "Τι έγγραφα χρειάζομαι;",
    "answer": "Σύμβαση και υπεύθυνη δήλωση.",
    "keywords": ["έγγραφα"]
  }
]`

func writeKB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qa_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStoreLoadsValidFile(t *testing.T) {
	s := NewStore(writeKB(t, validKB))

	require.Equal(t, 2, s.Len())
	entries := s.Entries()
	assert.Equal(t, "Πόσες ώρες χρειάζομαι;", entries[0].Question)
	assert.Equal(t, []string{"έγγραφα"}, entries[1].Keywords)
}

func TestStoreMissingFileFallsBack(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	assert.Equal(t, len(defaultEntries()), s.Len())
}

func TestStoreMalformedFileFallsBack(t *testing.T) {
	s := NewStore(writeKB(t, `{"not": "a list"}`))

	assert.Equal(t, len(defaultEntries()), s.Len())
}

func TestStoreEmptyListFallsBack(t *testing.T) {
	s := NewStore(writeKB(t, `[]`))

	assert.Equal(t, len(defaultEntries()), s.Len())
}

func TestStoreInvalidEntryInvalidatesWholeLoad(t *testing.T) {
	// second entry misses the answer key; no partial load happens
	kb := `[
	  {"id": 1, "category": "Α", "question": "ερώτηση", "answer": "απάντηση", "keywords": []},
	  {"id": 2, "category": "Β", "question": "ερώτηση δύο", "keywords": []}
	]`
	s := NewStore(writeKB(t, kb))

	assert.Equal(t, len(defaultEntries()), s.Len())
}

func TestStoreEmptyQuestionRejected(t *testing.T) {
	kb := `[{"id": 1, "category": "Α", "question": "", "answer": "απάντηση", "keywords": []}]`
	s := NewStore(writeKB(t, kb))

	assert.Equal(t, len(defaultEntries()), s.Len())
}

func TestReloadReportsChange(t *testing.T) {
	path := writeKB(t, validKB)
	s := NewStore(path)
	require.Equal(t, 2, s.Len())

	assert.False(t, s.Reload(), "same content should not report a change")

	extra := `[
	  {"id": 1, "category": "Α", "question": "πρώτη", "answer": "α", "keywords": []},
	  {"id": 2, "category": "Β", "question": "δεύτερη", "answer": "β", "keywords": []},
	  {"id": 3, "category": "Γ", "question": "τρίτη", "answer": "γ", "keywords": []}
	]`
	require.NoError(t, os.WriteFile(path, []byte(extra), 0o644))

	assert.True(t, s.Reload())
	assert.Equal(t, 3, s.Len())
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := NewStore(writeKB(t, validKB))

	entries := s.Entries()
	entries[0].Question = "αλλοιωμένη"

	assert.Equal(t, "Πόσες ώρες χρειάζομαι;", s.Entries()[0].Question)
}
