package retrieval

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-bot/backend/internal/knowledge"
)

func TestIndexBuildMismatch(t *testing.T) {
	idx := NewIndex()
	err := idx.Build([]Chunk{{ID: "a"}}, nil)
	assert.Error(t, err)
}

func TestIndexRetrieveOrdering(t *testing.T) {
	idx := NewIndex()
	chunks := []Chunk{
		{ID: "far", Content: "άσχετο"},
		{ID: "near", Content: "σχετικό"},
		{ID: "mid", Content: "κάπως σχετικό"},
	}
	vectors := [][]float32{
		{0, 1, 0},
		{1, 0, 0},
		{0.7, 0.7, 0},
	}
	require.NoError(t, idx.Build(chunks, vectors))

	results := idx.Retrieve([]float32{1, 0, 0}, 3)
	require.Len(t, results, 3)
	assert.Equal(t, "near", results[0].Chunk.ID)
	assert.Equal(t, "mid", results[1].Chunk.ID)
	assert.Equal(t, "far", results[2].Chunk.ID)
}

func TestIndexRetrieveClampsK(t *testing.T) {
	idx := NewIndex()
	require.NoError(t, idx.Build(
		[]Chunk{{ID: "only"}},
		[][]float32{{1, 0}},
	))

	assert.Len(t, idx.Retrieve([]float32{1, 0}, 10), 1)
	assert.Nil(t, idx.Retrieve([]float32{1, 0}, 0))
}

func TestIndexRetrieveEmpty(t *testing.T) {
	idx := NewIndex()
	assert.Nil(t, idx.Retrieve([]float32{1, 0}, 5))
	assert.Equal(t, 0, idx.Size())
}

func TestIndexRetrieveDeterministic(t *testing.T) {
	idx := NewIndex()
	chunks := make([]Chunk, 6)
	vectors := make([][]float32, 6)
	for i := range chunks {
		chunks[i] = Chunk{ID: fmt.Sprintf("c%d", i)}
		vectors[i] = []float32{1, 0} // all tie
	}
	require.NoError(t, idx.Build(chunks, vectors))

	first := idx.Retrieve([]float32{1, 0}, 4)
	for run := 0; run < 5; run++ {
		again := idx.Retrieve([]float32{1, 0}, 4)
		for i := range first {
			assert.Equal(t, first[i].Chunk.ID, again[i].Chunk.ID)
		}
	}
}

func TestNormalizeVector(t *testing.T) {
	v := []float32{3, 4}
	NormalizeVector(v)
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	zero := []float32{0, 0}
	NormalizeVector(zero)
	assert.Equal(t, []float32{0, 0}, zero)
}

// stubEmbedder returns a fixed-dimension vector derived from text length so
// builds are deterministic without network access.
type stubEmbedder struct {
	calls int
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	s.calls++
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v := []float32{float32(len(text)), 1, 0}
		NormalizeVector(v)
		out[i] = v
	}
	return out, nil
}

type stubFetcher struct {
	docs map[string]string
}

func (s *stubFetcher) Fetch(_ context.Context, name string) string {
	return s.docs[name]
}

func TestBuilderBuild(t *testing.T) {
	entries := []knowledge.Entry{
		{ID: 1, Category: "Ώρες", Question: "Πόσες ώρες;", Answer: "240 ώρες.", Keywords: []string{"ώρες"}},
	}
	fetcher := &stubFetcher{docs: map[string]string{
		"kanonismos.pdf": "Ο κανονισμός πρακτικής άσκησης. Οι ώρες είναι διακόσιες σαράντα.",
		"leipei.pdf":     "",
	}}

	b := NewBuilder(&stubEmbedder{}, fetcher, []string{"kanonismos.pdf", "leipei.pdf"}, BuilderOptions{})
	idx, err := b.Build(context.Background(), entries)
	require.NoError(t, err)
	require.NotNil(t, idx)

	// one doc chunk (the empty doc is skipped) plus one QA chunk
	assert.Equal(t, 2, idx.Size())

	results := idx.Retrieve([]float32{1, 0, 0}, 10)
	require.Len(t, results, 2)

	var qa, pdf bool
	for _, r := range results {
		switch r.Chunk.Type {
		case TypeQA:
			qa = true
			assert.Equal(t, "qa_1_chunk_0", r.Chunk.ID)
			assert.Equal(t, "Ώρες", r.Chunk.Category)
			assert.Contains(t, r.Chunk.Content, "Ερώτηση: Πόσες ώρες;")
			assert.Contains(t, r.Chunk.Content, "Απάντηση: 240 ώρες.")
		case TypePDF:
			pdf = true
			assert.Equal(t, "kanonismos.pdf_chunk_0", r.Chunk.ID)
			assert.Equal(t, "kanonismos.pdf", r.Chunk.Source)
		}
	}
	assert.True(t, qa)
	assert.True(t, pdf)
}

func TestBuilderNoChunks(t *testing.T) {
	b := NewBuilder(&stubEmbedder{}, nil, nil, BuilderOptions{})
	_, err := b.Build(context.Background(), nil)
	assert.Error(t, err)
}
