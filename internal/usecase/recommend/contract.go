package recommend

import (
	"context"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// VectorIndex returns the n nearest stored items by vector distance,
// ordered by ascending distance.
type VectorIndex interface {
	Search(ctx context.Context, vector []float32, n int) ([]domain.Candidate, error)
}

// Scorer reranks candidates under the request preferences.
type Scorer interface {
	Score(candidates []domain.Candidate, prefs domain.Preferences) []domain.ScoredResult
}
