package batch

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/pkg/sdk"
)

// DefaultTopK is the number of URLs collected per query.
const DefaultTopK = 5

// recommender is the API surface the runner needs from the SDK client.
type recommender interface {
	Recommend(ctx context.Context, req sdk.RecommendRequest) ([]sdk.Result, error)
}

// ResultRow is the outcome for one query. Failed queries carry no URLs.
type ResultRow struct {
	Query string
	URLs  []string
}

// Runner submits queries one by one and never aborts the batch: a
// failed query produces an empty URL set and the run continues.
type Runner struct {
	client recommender
	topK   int
	logger *zap.Logger
}

// NewRunner creates a batch Runner.
func NewRunner(client recommender, logger *zap.Logger) *Runner {
	return &Runner{client: client, topK: DefaultTopK, logger: logger}
}

// WithTopK overrides the URL count per query. Values < 1 are ignored.
func (r *Runner) WithTopK(n int) *Runner {
	if n >= 1 {
		r.topK = n
	}
	return r
}

// Run submits every query and returns one row per query, in input order.
func (r *Runner) Run(ctx context.Context, queries []string) []ResultRow {
	rows := make([]ResultRow, len(queries))
	for i, query := range queries {
		rows[i] = ResultRow{Query: query, URLs: r.submit(ctx, query)}
	}
	return rows
}

// Process reads queries from in, submits them, and writes the result CSV to out.
func (r *Runner) Process(ctx context.Context, in io.Reader, out io.Writer) error {
	queries, err := ReadQueries(in)
	if err != nil {
		return err
	}

	rows := r.Run(ctx, queries)
	return WriteResults(out, rows, r.topK)
}

func (r *Runner) submit(ctx context.Context, query string) []string {
	results, err := r.client.Recommend(ctx, sdk.RecommendRequest{
		Query: query,
		K:     r.topK,
	})
	if err != nil {
		r.logger.Warn("query failed", zap.String("query", query), zap.Error(err))
		return nil
	}

	urls := make([]string, 0, len(results))
	for _, res := range results {
		urls = append(urls, res.URL)
	}
	return urls
}
