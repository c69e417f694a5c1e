// Package retrieval embeds knowledge-base and document chunks and serves
// cosine-similarity search over them.
package retrieval

import (
	"fmt"
	"sort"
	"sync"
)

type ChunkType string

const (
	TypeQA  ChunkType = "qa"
	TypePDF ChunkType = "pdf"
)

type Chunk struct {
	ID         string
	Content    string
	Source     string
	Type       ChunkType
	Category   string
	Keywords   []string
	ChunkIndex int
}

type Result struct {
	Chunk Chunk
	Score float32
}

// Index is a flat in-memory inner-product index. Vectors are expected to be
// L2-normalized, making inner product equal to cosine similarity. The index
// is rebuilt wholesale on every knowledge or document change; there are no
// incremental updates.
type Index struct {
	mu      sync.RWMutex
	chunks  []Chunk
	vectors [][]float32
}

func NewIndex() *Index {
	return &Index{}
}

// Build replaces the entire contents of the index.
func (idx *Index) Build(chunks []Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunk/vector count mismatch: %d vs %d", len(chunks), len(vectors))
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.chunks = chunks
	idx.vectors = vectors
	return nil
}

// Retrieve returns the k nearest chunks to the (normalized) query vector in
// descending score order. Ties keep insertion order, so identical queries on
// an unchanged index always return identical results.
func (idx *Index) Retrieve(query []float32, k int) []Result {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if k <= 0 || len(idx.chunks) == 0 {
		return nil
	}

	results := make([]Result, len(idx.chunks))
	for i, vec := range idx.vectors {
		results[i] = Result{Chunk: idx.chunks[i], Score: dot(vec, query)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k]
}

func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks)
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
