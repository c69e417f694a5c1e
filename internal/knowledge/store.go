// Package knowledge loads and serves the curated question/answer records
// that are the primary source of truth for the assistant.
package knowledge

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/placement-bot/backend/pkg/logger"
)

type Entry struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// rawEntry mirrors Entry with pointer fields so a missing key is
// distinguishable from a zero value during validation.
type rawEntry struct {
	ID       *int      `json:"id"`
	Category *string   `json:"category"`
	Question *string   `json:"question"`
	Answer   *string   `json:"answer"`
	Keywords *[]string `json:"keywords"`
}

type Store struct {
	path string

	mu      sync.RWMutex
	entries []Entry
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.entries = s.read()
	return s
}

// Entries returns the current knowledge base. The slice is a copy; callers
// may not observe reloads through it.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Reload re-reads the backing file and reports whether the entry count
// changed, which downstream consumers use as the rebuild trigger.
func (s *Store) Reload() bool {
	fresh := s.read()

	s.mu.Lock()
	changed := len(fresh) != len(s.entries)
	s.entries = fresh
	s.mu.Unlock()

	logger.Info("Knowledge base reloaded",
		zap.Int("entries", len(fresh)),
		zap.Bool("changed", changed),
	)
	return changed
}

// read loads the Q&A file. Any failure (missing file, malformed JSON, a
// non-list top level, an empty list, an entry missing a required field)
// invalidates the whole load and falls back to the embedded defaults.
func (s *Store) read() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.Warn("Knowledge base file unavailable, using embedded defaults",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return defaultEntries()
	}

	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("Knowledge base file malformed, using embedded defaults",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return defaultEntries()
	}

	if len(raw) == 0 {
		logger.Warn("Knowledge base file empty, using embedded defaults", zap.String("path", s.path))
		return defaultEntries()
	}

	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		if r.ID == nil || r.Category == nil || r.Question == nil || r.Answer == nil || r.Keywords == nil ||
			*r.Question == "" || *r.Answer == "" {
			logger.Warn("Knowledge base entry invalid, using embedded defaults",
				zap.String("path", s.path),
				zap.Int("index", i),
			)
			return defaultEntries()
		}
		entries = append(entries, Entry{
			ID:       *r.ID,
			Category: *r.Category,
			Question: *r.Question,
			Answer:   *r.Answer,
			Keywords: *r.Keywords,
		})
	}

	logger.Info("Knowledge base loaded",
		zap.String("path", s.path),
		zap.Int("entries", len(entries)),
	)
	return entries
}
