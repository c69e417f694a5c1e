package concepts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	scores := Extract("Τι έγγραφα και ποια αίτηση χρειάζομαι;")

	assert.Contains(t, scores, Documents)
	assert.Greater(t, scores[Documents], 0.0)
	assert.LessOrEqual(t, scores[Documents], 1.0)
}

func TestExtractNoMatch(t *testing.T) {
	assert.Empty(t, Extract("καλημέρα"))
	assert.Empty(t, Extract(""))
}

func TestExtractUnaccentedQuery(t *testing.T) {
	// synonym normalization runs before keyword matching
	scores := Extract("τι εγγραφα χρειαζομαι")
	assert.Contains(t, scores, Documents)
}

func TestTop(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"πόσες ώρες πρέπει να κάνω και ποια η προθεσμία", Time},
		{"τι έγγραφα και ποια υπεύθυνη δήλωση χρειάζομαι", Documents},
		{"με ποιον επικοινωνώ για βοήθεια", Contact},
		{"καλημέρα σας", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Top(tt.query), "query %q", tt.query)
	}
}
