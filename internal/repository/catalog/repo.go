// Package catalog persists catalog items as hashes and owns the FT index
// over them.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/db"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// store is the consumer interface for catalog persistence.
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// HNSWConfig carries tunables for the vector index.
type HNSWConfig struct {
	M           int
	EFConstruct int
}

// Repo implements catalog item persistence.
type Repo struct {
	store     store
	vectorDim int
	hnsw      HNSWConfig
}

// New creates a catalog repository for vectors of the given dimensionality.
func New(s store, vectorDim int) *Repo {
	return &Repo{store: s, vectorDim: vectorDim}
}

// WithHNSW sets HNSW index parameters.
func (r *Repo) WithHNSW(cfg HNSWConfig) *Repo {
	r.hnsw = cfg
	return r
}

// EnsureIndex creates the item FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, domain.ItemIndexName)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	if err := r.store.CreateIndex(ctx, r.indexDefinition()); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// ResetIndex drops and recreates the item FT index. Item hashes survive;
// the index rebuilds from the configured prefix in the background.
func (r *Repo) ResetIndex(ctx context.Context) error {
	if err := r.store.DropIndex(ctx, domain.ItemIndexName); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("drop index: %w", err)
	}
	if err := r.store.CreateIndex(ctx, r.indexDefinition()); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Upsert stores a single item with its embedding vector.
func (r *Repo) Upsert(ctx context.Context, item domain.Item, vector []float32) error {
	fields, err := itemToFields(item, vector, r.vectorDim)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, domain.ItemKey(item.ID), fields); err != nil {
		return fmt.Errorf("upsert item %s: %w", item.ID, err)
	}
	return nil
}

// UpsertBatch stores multiple items in one pipelined round-trip.
func (r *Repo) UpsertBatch(ctx context.Context, items []domain.Item, vectors [][]float32) error {
	if len(items) != len(vectors) {
		return fmt.Errorf("items/vectors length mismatch: %d != %d", len(items), len(vectors))
	}

	batch := make([]db.HashSetItem, len(items))
	for i, item := range items {
		fields, err := itemToFields(item, vectors[i], r.vectorDim)
		if err != nil {
			return err
		}
		batch[i] = db.HashSetItem{Key: domain.ItemKey(item.ID), Fields: fields}
	}

	if err := r.store.HSetMulti(ctx, batch); err != nil {
		return fmt.Errorf("upsert batch: %w", err)
	}
	return nil
}

// Get loads a single item by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.Item, error) {
	fields, err := r.store.HGetAll(ctx, domain.ItemKey(id))
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domain.Item{}, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return domain.ItemFromFields(id, fields), nil
}

// Count returns the number of indexed items.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, domain.ItemIndexName, "*")
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *Repo) indexDefinition() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     domain.ItemIndexName,
		Prefixes: []string{domain.ItemKeyPrefix},
		Fields: []db.IndexField{
			{Name: domain.FieldName, Type: db.IndexFieldText},
			{Name: domain.FieldLongDescription, Type: db.IndexFieldText},
			{Name: domain.FieldTestType, Type: db.IndexFieldTag, TagSeparator: ","},
			{Name: domain.FieldRemoteSupport, Type: db.IndexFieldTag},
			{Name: domain.FieldAdaptiveSupport, Type: db.IndexFieldTag},
			{
				Name:              domain.FieldVector,
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         r.vectorDim,
				VectorDistance:    db.DistanceCosine,
				VectorM:           r.hnsw.M,
				VectorEFConstruct: r.hnsw.EFConstruct,
			},
		},
	}
}
