package retrieval

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/placement-bot/backend/internal/chunker"
	"github.com/placement-bot/backend/internal/knowledge"
	"github.com/placement-bot/backend/pkg/logger"
)

// TextFetcher supplies document text by name; an empty string means the
// document is unavailable.
type TextFetcher interface {
	Fetch(ctx context.Context, name string) string
}

type BuilderOptions struct {
	DocChunkSize    int
	DocChunkOverlap int
	QAChunkSize     int
	QAChunkOverlap  int
}

// Builder turns the knowledge base and the remote documents into an embedded
// index. Build always constructs the index from scratch.
type Builder struct {
	embedder Embedder
	fetcher  TextFetcher
	docNames []string
	opts     BuilderOptions
}

func NewBuilder(embedder Embedder, fetcher TextFetcher, docNames []string, opts BuilderOptions) *Builder {
	if opts.DocChunkSize <= 0 {
		opts.DocChunkSize = 1000
	}
	if opts.DocChunkOverlap <= 0 {
		opts.DocChunkOverlap = 150
	}
	if opts.QAChunkSize <= 0 {
		opts.QAChunkSize = 400
	}
	if opts.QAChunkOverlap <= 0 {
		opts.QAChunkOverlap = 50
	}
	return &Builder{
		embedder: embedder,
		fetcher:  fetcher,
		docNames: docNames,
		opts:     opts,
	}
}

// InvalidateDocuments drops the fetcher's memoized texts so the next Build
// re-downloads every document.
func (b *Builder) InvalidateDocuments() {
	if inv, ok := b.fetcher.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}
}

// Build chunks every source, embeds the chunks and returns a fresh index.
func (b *Builder) Build(ctx context.Context, entries []knowledge.Entry) (*Index, error) {
	chunks := b.collectChunks(ctx, entries)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks to index")
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vectors, err := b.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}

	idx := NewIndex()
	if err := idx.Build(chunks, vectors); err != nil {
		return nil, err
	}

	logger.Info("Retrieval index built",
		zap.Int("chunks", len(chunks)),
		zap.Int("entries", len(entries)),
		zap.Int("documents", len(b.docNames)),
	)
	return idx, nil
}

func (b *Builder) collectChunks(ctx context.Context, entries []knowledge.Entry) []Chunk {
	var chunks []Chunk

	for _, name := range b.docNames {
		text := b.fetcher.Fetch(ctx, name)
		if text == "" {
			continue
		}
		for i, passage := range chunker.Split(text, b.opts.DocChunkSize, b.opts.DocChunkOverlap) {
			chunks = append(chunks, Chunk{
				ID:         fmt.Sprintf("%s_chunk_%d", name, i),
				Content:    passage,
				Source:     name,
				Type:       TypePDF,
				ChunkIndex: i,
			})
		}
	}

	for _, e := range entries {
		text := fmt.Sprintf("Ερώτηση: %s\nΑπάντηση: %s", e.Question, e.Answer)
		for i, passage := range chunker.Split(text, b.opts.QAChunkSize, b.opts.QAChunkOverlap) {
			chunks = append(chunks, Chunk{
				ID:         fmt.Sprintf("qa_%d_chunk_%d", e.ID, i),
				Content:    passage,
				Source:     strings.TrimSpace(e.Question),
				Type:       TypeQA,
				Category:   e.Category,
				Keywords:   e.Keywords,
				ChunkIndex: i,
			})
		}
	}

	return chunks
}
