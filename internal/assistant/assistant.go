// Package assistant orchestrates the answer pipeline: lexical best match,
// retrieval-augmented generation, plain generation, medium-confidence
// lexical fallback, concept-based canned fallback. Every query produces a
// ChatResponse; no tier failure ever reaches the caller.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/internal/generator"
	"github.com/placement-bot/backend/internal/history"
	"github.com/placement-bot/backend/internal/knowledge"
	"github.com/placement-bot/backend/internal/metrics"
	"github.com/placement-bot/backend/internal/retrieval"
	"github.com/placement-bot/backend/internal/score"
	"github.com/placement-bot/backend/internal/textnorm"
	"github.com/placement-bot/backend/pkg/logger"
	"github.com/placement-bot/backend/pkg/utils"
)

// Capabilities records which optional collaborators were resolved at
// startup. The tier-selection logic consults these flags instead of probing
// per query.
type Capabilities struct {
	Generator bool
	Retrieval bool
	Documents bool
	Cache     bool
	History   bool
}

type ChatResponse struct {
	ID           string  `json:"id"`
	Answer       string  `json:"answer"`
	Confidence   float64 `json:"confidence"`
	Category     string  `json:"category"`
	Timestamp    string  `json:"timestamp"`
	ResponseTime float64 `json:"response_time"`
}

// Generator is the external text-completion collaborator.
type Generator interface {
	Answer(ctx context.Context, contextBlock, question string) (string, error)
}

// ResponseCache memoizes whole responses keyed by normalized question.
type ResponseCache interface {
	GetResponse(ctx context.Context, key string, out interface{}) bool
	SetResponse(ctx context.Context, key string, response interface{})
	InvalidateResponses(ctx context.Context)
}

type Options struct {
	HighThreshold   float64
	MediumThreshold float64
	TopK            int
}

const (
	tierLexical         = "lexical"
	tierRAG             = "rag"
	tierGenerator       = "generator"
	tierLexicalFallback = "lexical_fallback"
	tierConceptFallback = "concept_fallback"
	tierCached          = "cached"

	ragConfidence       = 0.95
	generatorConfidence = 0.85
)

type Assistant struct {
	kb       *knowledge.Store
	caps     Capabilities
	opts     Options
	gen      Generator
	embedder retrieval.Embedder
	builder  *retrieval.Builder
	cache    ResponseCache
	hist     *history.Store

	idxMu sync.RWMutex
	index *retrieval.Index

	convMu       sync.Mutex
	conversation []history.Exchange
}

func New(kb *knowledge.Store, caps Capabilities, opts Options, gen Generator,
	embedder retrieval.Embedder, builder *retrieval.Builder, cache ResponseCache, hist *history.Store) *Assistant {

	if opts.HighThreshold <= 0 {
		opts.HighThreshold = 0.30
	}
	if opts.MediumThreshold <= 0 {
		opts.MediumThreshold = 0.15
	}
	if opts.TopK <= 0 {
		opts.TopK = 6
	}

	return &Assistant{
		kb:       kb,
		caps:     caps,
		opts:     opts,
		gen:      gen,
		embedder: embedder,
		builder:  builder,
		cache:    cache,
		hist:     hist,
	}
}

func (a *Assistant) Capabilities() Capabilities {
	return a.caps
}

// GetResponse runs the question through the tier chain. It never returns an
// error and never panics outward; the worst case is the generic fallback.
func (a *Assistant) GetResponse(ctx context.Context, question string) (resp ChatResponse) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Answer pipeline panicked", zap.Any("panic", r))
			resp = a.finish(ctx, start, question, genericFallback, 0, "Γενική Βοήθεια", tierConceptFallback, "")
		}
	}()

	question = strings.TrimSpace(question)
	if question == "" {
		return a.finish(ctx, start, question, genericFallback, 0, "Γενική Βοήθεια", tierConceptFallback, "")
	}

	cacheKey := utils.HashString(textnorm.Normalize(question))
	if a.cache != nil {
		var cached ChatResponse
		if a.cache.GetResponse(ctx, cacheKey, &cached) {
			cached.ID = uuid.New().String()
			cached.Timestamp = time.Now().Format(time.RFC3339)
			cached.ResponseTime = time.Since(start).Seconds()
			metrics.AnswersTotal.WithLabelValues(tierCached).Inc()
			a.record(cached, question)
			return cached
		}
	}

	entries := a.kb.Entries()
	bestIdx, bestScore := score.Best(question, entries)

	// tier 1: high-confidence lexical match
	if bestIdx >= 0 && bestScore >= a.opts.HighThreshold {
		e := entries[bestIdx]
		return a.finish(ctx, start, question, e.Answer, bestScore, e.Category, tierLexical, cacheKey)
	}

	// tier 2: retrieval-augmented generation
	if a.caps.Generator && a.caps.Retrieval {
		if answer, ok := a.answerWithRetrieval(ctx, question); ok {
			return a.finish(ctx, start, question, answer, ragConfidence, "AI/RAG", tierRAG, cacheKey)
		}
	}

	// Tiers below RAG are never cached: an answer produced while the
	// generator or index is down would otherwise be served for the full
	// cache TTL after recovery.

	// tier 3: generation without retrieved context
	if a.caps.Generator {
		if answer, ok := a.generate(ctx, "", question); ok {
			return a.finish(ctx, start, question, answer+verifySuffix, generatorConfidence, "AI", tierGenerator, "")
		}
	}

	// tier 4: medium-confidence lexical match
	if bestIdx >= 0 && bestScore >= a.opts.MediumThreshold {
		e := entries[bestIdx]
		return a.finish(ctx, start, question, e.Answer+adviceSuffix, bestScore, e.Category, tierLexicalFallback, "")
	}

	// tier 5: concept-based canned fallback
	return a.finish(ctx, start, question, conceptFallback(question), bestScore, "Γενική Βοήθεια", tierConceptFallback, "")
}

func (a *Assistant) answerWithRetrieval(ctx context.Context, question string) (string, bool) {
	idx := a.currentIndex()
	if idx == nil || idx.Size() == 0 {
		return "", false
	}

	vectors, err := a.embedder.Embed(ctx, []string{question})
	if err != nil || len(vectors) != 1 {
		logger.Warn("Query embedding failed", zap.Error(err))
		return "", false
	}

	results := idx.Retrieve(vectors[0], a.opts.TopK)
	if len(results) == 0 {
		return "", false
	}

	return a.generate(ctx, layeredContext(question, results), question)
}

func (a *Assistant) generate(ctx context.Context, contextBlock, question string) (string, bool) {
	answer, err := a.gen.Answer(ctx, contextBlock, question)
	if err != nil {
		if errors.Is(err, generator.ErrRejectedOutput) {
			metrics.GeneratorRejections.Inc()
		}
		logger.Warn("Generator tier failed", zap.Error(err))
		return "", false
	}
	if strings.TrimSpace(answer) == "" {
		logger.Warn("Generator returned empty answer")
		return "", false
	}
	return answer, true
}

func (a *Assistant) finish(ctx context.Context, start time.Time, question, answer string,
	confidence float64, category, tier, cacheKey string) ChatResponse {

	resp := ChatResponse{
		ID:           uuid.New().String(),
		Answer:       answer,
		Confidence:   confidence,
		Category:     category,
		Timestamp:    time.Now().Format(time.RFC3339),
		ResponseTime: time.Since(start).Seconds(),
	}

	metrics.AnswersTotal.WithLabelValues(tier).Inc()
	metrics.ConfidenceScore.Observe(confidence)
	metrics.ResponseDuration.Observe(resp.ResponseTime)

	if a.cache != nil && cacheKey != "" {
		a.cache.SetResponse(ctx, cacheKey, resp)
	}

	a.record(resp, question)

	logger.Info("Question answered",
		zap.String("tier", tier),
		zap.Float64("confidence", confidence),
		zap.Float64("seconds", resp.ResponseTime),
	)
	return resp
}

// record appends to the in-memory conversation trail and, when configured,
// the durable history store. The pipeline never reads either back.
func (a *Assistant) record(resp ChatResponse, question string) {
	exchange := history.Exchange{
		ID:           resp.ID,
		Question:     question,
		Answer:       resp.Answer,
		Confidence:   resp.Confidence,
		Source:       resp.Category,
		ResponseTime: resp.ResponseTime,
		CreatedAt:    time.Now(),
	}

	a.convMu.Lock()
	a.conversation = append(a.conversation, exchange)
	a.convMu.Unlock()

	if a.hist != nil {
		if err := a.hist.InsertExchange(exchange); err != nil {
			logger.Warn("Failed to persist exchange", zap.Error(err))
		}
	}
}

// Recent returns the latest exchanges, preferring the durable store.
func (a *Assistant) Recent(limit int) []history.Exchange {
	if a.hist != nil {
		if out, err := a.hist.RecentExchanges(limit); err == nil {
			return out
		} else {
			logger.Warn("Failed to read history", zap.Error(err))
		}
	}

	a.convMu.Lock()
	defer a.convMu.Unlock()
	if limit <= 0 || limit > len(a.conversation) {
		limit = len(a.conversation)
	}
	out := make([]history.Exchange, limit)
	copy(out, a.conversation[len(a.conversation)-limit:])
	return out
}

// RebuildIndex re-chunks and re-embeds every source and swaps the new index
// in atomically. The previous index keeps serving until the swap.
func (a *Assistant) RebuildIndex(ctx context.Context) error {
	if !a.caps.Retrieval || a.builder == nil {
		return nil
	}

	idx, err := a.builder.Build(ctx, a.kb.Entries())
	if err != nil {
		return err
	}

	a.idxMu.Lock()
	a.index = idx
	a.idxMu.Unlock()

	metrics.IndexChunks.Set(float64(idx.Size()))
	return nil
}

// Reload re-reads the knowledge base, drops cached responses and memoized
// document texts, and rebuilds the retrieval index so changed sources are
// picked up regardless of whether the entry count moved.
func (a *Assistant) Reload(ctx context.Context) {
	a.kb.Reload()

	if a.cache != nil {
		a.cache.InvalidateResponses(ctx)
	}
	if a.builder != nil {
		a.builder.InvalidateDocuments()
	}

	if err := a.RebuildIndex(ctx); err != nil {
		logger.Warn("Index rebuild after reload failed", zap.Error(err))
	}
}

func (a *Assistant) currentIndex() *retrieval.Index {
	a.idxMu.RLock()
	defer a.idxMu.RUnlock()
	return a.index
}
