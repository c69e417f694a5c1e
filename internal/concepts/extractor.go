// Package concepts maps queries onto a fixed set of internship domain topics.
// The strengths feed the lexical scorer's topic term, the canned fallback
// selection and the relevance ordering of retrieved document chunks.
package concepts

import (
	"strings"

	"github.com/placement-bot/backend/internal/textnorm"
)

const (
	Documents  = "documents"
	Facilities = "facilities"
	Sports     = "sports"
	Time       = "time"
	Money      = "money"
	Process    = "process"
	Contact    = "contact"
)

type concept struct {
	keywords []string
	weight   float64
}

var table = map[string]concept{
	Documents: {
		keywords: []string{"έγγραφα", "αίτηση", "φόρμες", "δήλωση", "βεβαίωση", "σύμβαση", "υπεύθυνη", "ασφαλιστική", "ικανότητα"},
		weight:   1.0,
	},
	Facilities: {
		keywords: []string{"δομή", "φορέα", "γυμναστήριο", "σωματείο", "σύλλογος", "ακαδημία", "κέντρο"},
		weight:   0.9,
	},
	Sports: {
		keywords: []string{"προπονητική", "προπονητής", "αθλητισμός", "γυμναστική", "ποδόσφαιρο", "κολύμβηση"},
		weight:   0.8,
	},
	Time: {
		keywords: []string{"ώρες", "240", "χρόνος", "διάρκεια", "πόσες", "χρονοδιάγραμμα", "προθεσμία", "ωράριο"},
		weight:   1.0,
	},
	Money: {
		keywords: []string{"κόστος", "χρήματα", "πληρωμή", "δωρεάν", "αμοιβή", "οικονομικά"},
		weight:   0.9,
	},
	Process: {
		keywords: []string{"διαδικασία", "βήματα", "ξεκινάω", "αρχή", "εγγραφή", "υπογραφή", "σφραγίδα", "αξιολόγηση"},
		weight:   0.95,
	},
	Contact: {
		keywords: []string{"επικοινωνία", "email", "τηλέφωνο", "βοήθεια", "υπεύθυνος", "επικοινωνώ", "ποιον"},
		weight:   1.0,
	},
}

// Extract returns the strength of every concept present in the query.
// Strength is the fraction of the concept's keywords found in the normalized
// query, scaled by the concept weight. Concepts with zero strength are
// omitted.
func Extract(query string) map[string]float64 {
	normalized := textnorm.Normalize(query)
	if normalized == "" {
		return map[string]float64{}
	}

	scores := make(map[string]float64)
	for name, c := range table {
		hits := 0
		for _, kw := range c.keywords {
			if strings.Contains(normalized, textnorm.Normalize(kw)) {
				hits++
			}
		}
		if hits > 0 {
			scores[name] = float64(hits) / float64(len(c.keywords)) * c.weight
		}
	}
	return scores
}

// Top returns the strongest concept of the query, or "" when none matches.
func Top(query string) string {
	scores := Extract(query)
	best := ""
	bestScore := 0.0
	// map iteration order is random; tie-break on name for determinism
	for name, s := range scores {
		if s > bestScore || (s == bestScore && best != "" && name < best) {
			best = name
			bestScore = s
		}
	}
	return best
}
