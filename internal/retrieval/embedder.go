package retrieval

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/pkg/logger"
	"github.com/placement-bot/backend/pkg/utils"
)

// Embedder turns text into L2-normalized vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbeddingCache memoizes vectors across index rebuilds. A nil cache is
// valid and means no caching.
type EmbeddingCache interface {
	GetEmbedding(ctx context.Context, key string) ([]float32, bool)
	SetEmbedding(ctx context.Context, key string, vector []float32)
}

// OpenAIEmbedder batches texts through the embeddings API.
type OpenAIEmbedder struct {
	client    *openai.Client
	model     string
	batchSize int
	cache     EmbeddingCache
}

func NewOpenAIEmbedder(apiKey, model string, batchSize int, cache EmbeddingCache) *OpenAIEmbedder {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &OpenAIEmbedder{
		client:    openai.NewClient(apiKey),
		model:     model,
		batchSize: batchSize,
		cache:     cache,
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, len(texts))

	// collect cache misses, preserving positions
	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if e.cache != nil {
			if vec, ok := e.cache.GetEmbedding(ctx, utils.HashString(text)); ok {
				out[i] = vec
				continue
			}
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	for start := 0; start < len(missing); start += e.batchSize {
		end := start + e.batchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[start:end]

		reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		resp, err := e.client.CreateEmbeddings(reqCtx, openai.EmbeddingRequest{
			Input: batch,
			Model: openai.EmbeddingModel(e.model),
		})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to generate embeddings: %w", err)
		}
		if len(resp.Data) != len(batch) {
			return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(resp.Data), len(batch))
		}

		for j, data := range resp.Data {
			vec := make([]float32, len(data.Embedding))
			copy(vec, data.Embedding)
			NormalizeVector(vec)

			pos := missingIdx[start+j]
			out[pos] = vec
			if e.cache != nil {
				e.cache.SetEmbedding(ctx, utils.HashString(texts[pos]), vec)
			}
		}
	}

	logger.Debug("Embeddings generated",
		zap.Int("texts", len(texts)),
		zap.Int("api_calls", (len(missing)+e.batchSize-1)/e.batchSize),
	)
	return out, nil
}

// NormalizeVector scales v to unit length in place. Zero vectors are left
// untouched.
func NormalizeVector(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range v {
		v[i] /= norm
	}
}
