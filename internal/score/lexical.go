// Package score implements the blended lexical similarity between a user
// query and knowledge-base entries.
package score

import (
	"strings"

	"github.com/placement-bot/backend/internal/concepts"
	"github.com/placement-bot/backend/internal/knowledge"
	"github.com/placement-bot/backend/internal/textnorm"
)

const (
	directWeight  = 0.40
	keywordWeight = 0.35
	overlapWeight = 0.15
	topicWeight   = 0.10
)

// Score returns the similarity of query and entry in [0,1].
//
// Four terms are blended: character-level sequence similarity of the
// questions, keyword hits (exact substring, partial word match and
// near-misspelling), distinct shared words over query length, and agreement
// of the concept sets of both questions.
func Score(query string, entry knowledge.Entry) float64 {
	nq := textnorm.Normalize(query)
	nqq := textnorm.Normalize(entry.Question)
	queryWords := splitWords(nq)

	direct := Ratio(nq, nqq)

	keyword := 0.0
	for _, kw := range entry.Keywords {
		nkw := textnorm.Normalize(kw)
		if nkw == "" {
			continue
		}
		if strings.Contains(nq, nkw) {
			keyword += 0.4
		}
		for _, w := range queryWords {
			if len([]rune(w)) > 2 && len([]rune(nkw)) > 2 {
				if strings.Contains(w, nkw) || strings.Contains(nkw, w) {
					keyword += 0.2
				}
				if Ratio(w, nkw) > 0.8 {
					keyword += 0.3
				}
			}
		}
	}
	if keyword > 1.0 {
		keyword = 1.0
	}

	overlap := 0.0
	if len(queryWords) > 0 {
		entryWords := make(map[string]bool)
		for _, w := range splitWords(nqq) {
			entryWords[w] = true
		}
		shared := make(map[string]bool)
		for _, w := range queryWords {
			if entryWords[w] {
				shared[w] = true
			}
		}
		overlap = float64(len(shared)) / float64(len(queryWords))
	}

	topic := 0.0
	queryConcepts := concepts.Extract(query)
	entryConcepts := concepts.Extract(entry.Question)
	for name := range queryConcepts {
		if entryConcepts[name] > 0 {
			topic += 0.3
		}
	}
	if topic > 1.0 {
		topic = 1.0
	}

	total := direct*directWeight + keyword*keywordWeight + overlap*overlapWeight + topic*topicWeight
	if total > 1.0 {
		total = 1.0
	}
	return total
}

// Best scores the query against every entry and returns the index and score
// of the winner. Ties keep the earliest entry. Returns (-1, 0) for an empty
// knowledge base.
func Best(query string, entries []knowledge.Entry) (int, float64) {
	bestIdx := -1
	bestScore := 0.0
	for i, e := range entries {
		if s := Score(query, e); bestIdx < 0 || s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	return bestIdx, bestScore
}

func splitWords(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
