// Package vector is the VectorIndex boundary: nearest-neighbor retrieval
// over the item FT index.
package vector

import (
	"context"
	"fmt"
	"strings"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/db"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// store is the consumer interface for KNN search.
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements recommend.VectorIndex over FT.SEARCH.
type Repo struct {
	store store
}

// New creates a vector index repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search returns the n nearest items by ascending cosine distance.
// Distances are passed through raw, without clamping or conversion, so the
// scoring layer sees exactly what the index reported.
func (r *Repo) Search(ctx context.Context, vec []float32, n int) ([]domain.Candidate, error) {
	q := &db.KNNQuery{
		IndexName:    domain.ItemIndexName,
		Vector:       vec,
		K:            n,
		ReturnFields: domain.MetadataFields(),
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	candidates := make([]domain.Candidate, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, domain.ItemKeyPrefix)
		candidates = append(candidates, domain.Candidate{
			Distance: entry.Distance,
			Item:     domain.ItemFromFields(id, entry.Fields),
		})
	}

	return candidates, nil
}
