package assistant

import (
	"fmt"
	"strings"

	"github.com/placement-bot/backend/internal/concepts"
	"github.com/placement-bot/backend/internal/retrieval"
)

// maxContextChunkChars bounds the text quoted per chunk in the prompt.
const maxContextChunkChars = 800

// layeredContext assembles the generator prompt context from retrieved
// chunks: official documents first, knowledge-base excerpts second. Within
// each layer, chunks touching the query's strongest concept are promoted so
// the most on-topic material leads.
func layeredContext(question string, results []retrieval.Result) string {
	topConcept := concepts.Top(question)

	var docResults, qaResults []retrieval.Result
	for _, r := range results {
		if r.Chunk.Type == retrieval.TypePDF {
			docResults = append(docResults, r)
		} else {
			qaResults = append(qaResults, r)
		}
	}
	docResults = promoteConcept(docResults, topConcept)
	qaResults = promoteConcept(qaResults, topConcept)

	var b strings.Builder
	if len(docResults) > 0 {
		b.WriteString("Αποσπάσματα από επίσημα έγγραφα:\n")
		for i, r := range docResults {
			b.WriteString(fmt.Sprintf("\n[Έγγραφο %d: %s]\n%s\n", i+1, r.Chunk.Source, clip(r.Chunk.Content)))
		}
	}
	if len(qaResults) > 0 {
		b.WriteString("\nΣχετικές ερωταπαντήσεις:\n")
		for i, r := range qaResults {
			b.WriteString(fmt.Sprintf("\n[Ερώτηση %d — %s]\n%s\n", i+1, r.Chunk.Category, clip(r.Chunk.Content)))
		}
	}
	return strings.TrimSpace(b.String())
}

// promoteConcept stably moves chunks mentioning the concept ahead of the
// rest; score order is preserved within each partition.
func promoteConcept(results []retrieval.Result, concept string) []retrieval.Result {
	if concept == "" || len(results) < 2 {
		return results
	}

	matching := make([]retrieval.Result, 0, len(results))
	var rest []retrieval.Result
	for _, r := range results {
		if _, ok := concepts.Extract(r.Chunk.Content)[concept]; ok {
			matching = append(matching, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(matching, rest...)
}

func clip(text string) string {
	runes := []rune(text)
	if len(runes) <= maxContextChunkChars {
		return text
	}
	return string(runes[:maxContextChunkChars]) + "…"
}
