package recommend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/logger"
)

// DefaultOversample is the candidate pool size requested from the index.
// Fixed regardless of k so reranking has stable, bounded headroom.
const DefaultOversample = 20

// Service orchestrates a recommendation request end-to-end:
// embed → oversampled vector search → rerank → truncate to k.
// Stateless across requests; the injected collaborators are constructed once
// at process start and shared read-only.
type Service struct {
	index      VectorIndex
	embed      Embedder
	scorer     Scorer
	oversample int
}

// New creates a recommendation service.
func New(index VectorIndex, embed Embedder, scorer Scorer) *Service {
	return &Service{
		index:      index,
		embed:      embed,
		scorer:     scorer,
		oversample: DefaultOversample,
	}
}

// WithOversample overrides the candidate pool size. Values < 1 are ignored.
func (s *Service) WithOversample(n int) *Service {
	if n >= 1 {
		s.oversample = n
	}
	return s
}

// Recommend returns the top-k recommendations for the request.
// Returns domain.ErrInvalidRequest for bad input; collaborator failures are
// surfaced to the caller, never retried here.
func (s *Service) Recommend(ctx context.Context, req domain.QueryRequest) ([]domain.ScoredResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emb, err := s.embed.Embed(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	// Pool must stay >= k so boosts can reorder beyond raw similarity rank.
	n := s.oversample
	if req.K > n {
		n = req.K
	}

	candidates, err := s.index.Search(ctx, emb.Embedding, n)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	results := s.scorer.Score(candidates, req.Preferences())

	// If k exceeds the pool, return everything available. No padding.
	if len(results) > req.K {
		results = results[:req.K]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	logger.FromContext(ctx).Debug("recommendation served",
		zap.Int("k", req.K),
		zap.Int("pool", len(candidates)),
		zap.Int("results", len(results)),
		zap.Int("embed_tokens", emb.TotalTokens),
	)

	return results, nil
}
