package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// DefaultBatchSize is the number of items embedded and written per round-trip.
const DefaultBatchSize = 32

// catalogWriter is the consumer interface for catalog persistence.
type catalogWriter interface {
	EnsureIndex(ctx context.Context) error
	UpsertBatch(ctx context.Context, items []domain.Item, vectors [][]float32) error
}

// Report summarizes an ingestion run.
type Report struct {
	Ingested    int
	Batches     int
	TotalTokens int
}

// Ingester embeds catalog items and writes them to the index in batches.
type Ingester struct {
	catalog   catalogWriter
	embedder  domain.Embedder
	batchSize int
	logger    *zap.Logger
}

// New creates an Ingester.
func New(catalog catalogWriter, embedder domain.Embedder, logger *zap.Logger) *Ingester {
	return &Ingester{
		catalog:   catalog,
		embedder:  embedder,
		batchSize: DefaultBatchSize,
		logger:    logger,
	}
}

// WithBatchSize overrides the batch size. Values < 1 are ignored.
func (in *Ingester) WithBatchSize(n int) *Ingester {
	if n >= 1 {
		in.batchSize = n
	}
	return in
}

// Run ensures the index exists, then embeds and upserts all items.
// A batch failure aborts the run; already written batches stay indexed,
// so a rerun of the same file is safe (upserts are idempotent by id).
func (in *Ingester) Run(ctx context.Context, items []domain.Item) (Report, error) {
	if err := in.catalog.EnsureIndex(ctx); err != nil {
		return Report{}, fmt.Errorf("ensure index: %w", err)
	}

	var report Report
	for start := 0; start < len(items); start += in.batchSize {
		end := start + in.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		texts := make([]string, len(batch))
		for i, item := range batch {
			texts[i] = item.EmbeddingText()
		}

		emb, err := in.embedBatch(ctx, texts)
		if err != nil {
			return report, fmt.Errorf("embed batch %d: %w", report.Batches, err)
		}

		if err := in.catalog.UpsertBatch(ctx, batch, emb.Embeddings); err != nil {
			return report, fmt.Errorf("upsert batch %d: %w", report.Batches, err)
		}

		report.Ingested += len(batch)
		report.Batches++
		report.TotalTokens += emb.TotalTokens

		in.logger.Info("batch ingested",
			zap.Int("batch", report.Batches),
			zap.Int("items", len(batch)),
			zap.Int("tokens", emb.TotalTokens),
		)
	}

	return report, nil
}

// embedBatch uses native batching when the embedder supports it.
func (in *Ingester) embedBatch(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	if be, ok := in.embedder.(domain.BatchEmbedder); ok {
		return be.BatchEmbed(ctx, texts)
	}
	return domain.BatchFallback(ctx, in.embedder, texts)
}
