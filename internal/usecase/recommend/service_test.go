package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/usecase/scoring"
)

// --- Mocks ---

type mockEmbedder struct {
	vec    []float32
	err    error
	called bool
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.called = true
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec, TotalTokens: 7}, nil
}

type mockIndex struct {
	candidates []domain.Candidate
	err        error
	lastN      int
	calls      int
}

func (m *mockIndex) Search(_ context.Context, _ []float32, n int) ([]domain.Candidate, error) {
	m.calls++
	m.lastN = n
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

func poolOf(t *testing.T, size int) []domain.Candidate {
	t.Helper()
	pool := make([]domain.Candidate, size)
	for i := range pool {
		pool[i] = domain.Candidate{
			Distance: 0.1 + float64(i)*0.01,
			Item:     domain.Item{ID: fmt.Sprintf("item-%d", i)},
		}
	}
	return pool
}

func newTestService(index *mockIndex, embed *mockEmbedder) *Service {
	return New(index, embed, scoring.New())
}

// --- Tests ---

func TestRecommend_HappyPath(t *testing.T) {
	index := &mockIndex{candidates: poolOf(t, 20)}
	embed := &mockEmbedder{vec: []float32{0.1, 0.2}}
	svc := newTestService(index, embed)

	results, err := svc.Recommend(context.Background(), domain.QueryRequest{Query: "junior java developer", K: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Rank != i+1 {
			t.Errorf("result %d has rank %d, want %d", i, r.Rank, i+1)
		}
	}
	if !embed.called {
		t.Error("expected embedder to be called")
	}
	if index.lastN != DefaultOversample {
		t.Errorf("index searched with n=%d, want fixed oversample %d", index.lastN, DefaultOversample)
	}
}

func TestRecommend_KExceedsPool(t *testing.T) {
	index := &mockIndex{candidates: poolOf(t, 15)}
	svc := newTestService(index, &mockEmbedder{vec: []float32{0.1}})

	results, err := svc.Recommend(context.Background(), domain.QueryRequest{Query: "analyst", K: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// All 15 come back, ranks 1..15, no padding.
	if len(results) != 15 {
		t.Fatalf("expected 15 results, got %d", len(results))
	}
	if results[14].Rank != 15 {
		t.Errorf("last rank = %d, want 15", results[14].Rank)
	}
	// Pool invariant: the index must still be asked for >= k.
	if index.lastN != 100 {
		t.Errorf("index searched with n=%d, want 100", index.lastN)
	}
}

func TestRecommend_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  domain.QueryRequest
	}{
		{"empty query", domain.QueryRequest{Query: "", K: 5}},
		{"blank query", domain.QueryRequest{Query: "   ", K: 5}},
		{"zero k", domain.QueryRequest{Query: "developer", K: 0}},
		{"negative k", domain.QueryRequest{Query: "developer", K: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := &mockIndex{}
			svc := newTestService(index, &mockEmbedder{vec: []float32{0.1}})

			_, err := svc.Recommend(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
			if index.calls != 0 {
				t.Error("index should not be called for invalid requests")
			}
		})
	}
}

func TestRecommend_EmbedderFailureSurfaces(t *testing.T) {
	embed := &mockEmbedder{err: fmt.Errorf("timeout: %w", domain.ErrEmbeddingProviderError)}
	index := &mockIndex{candidates: poolOf(t, 20)}
	svc := newTestService(index, embed)

	_, err := svc.Recommend(context.Background(), domain.QueryRequest{Query: "developer", K: 5})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Errorf("expected ErrEmbeddingProviderError, got %v", err)
	}
	if index.calls != 0 {
		t.Error("index should not be called when embedding fails")
	}
}

func TestRecommend_IndexFailureSurfaces(t *testing.T) {
	index := &mockIndex{err: fmt.Errorf("connect: %w", domain.ErrIndexUnavailable)}
	svc := newTestService(index, &mockEmbedder{vec: []float32{0.1}})

	_, err := svc.Recommend(context.Background(), domain.QueryRequest{Query: "developer", K: 5})
	if !errors.Is(err, domain.ErrIndexUnavailable) {
		t.Errorf("expected ErrIndexUnavailable, got %v", err)
	}
	// No retries: exactly one search attempt.
	if index.calls != 1 {
		t.Errorf("index called %d times, want 1", index.calls)
	}
}

func TestRecommend_BoostsReorderBeyondSimilarityRank(t *testing.T) {
	index := &mockIndex{candidates: []domain.Candidate{
		{Distance: 0.10, Item: domain.Item{ID: "closest"}},
		{Distance: 0.12, Item: domain.Item{ID: "boosted", TestType: "K"}},
	}}
	svc := newTestService(index, &mockEmbedder{vec: []float32{0.1}})

	results, err := svc.Recommend(context.Background(), domain.QueryRequest{
		Query: "developer", K: 2, TestTypePreference: "K",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Item.ID != "boosted" {
		t.Errorf("expected boosted item first, got %s", results[0].Item.ID)
	}
	if results[0].Rank != 1 || results[1].Rank != 2 {
		t.Errorf("ranks = %d,%d, want 1,2", results[0].Rank, results[1].Rank)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	index := &mockIndex{candidates: poolOf(t, 20)}
	svc := newTestService(index, &mockEmbedder{vec: []float32{0.1}})
	req := domain.QueryRequest{Query: "project manager", K: 6, RemotePreferred: domain.Prefer}

	first, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests produced different ordered output")
	}
}

func TestWithOversample(t *testing.T) {
	index := &mockIndex{candidates: poolOf(t, 20)}
	svc := newTestService(index, &mockEmbedder{vec: []float32{0.1}}).WithOversample(50)

	if _, err := svc.Recommend(context.Background(), domain.QueryRequest{Query: "qa", K: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.lastN != 50 {
		t.Errorf("index searched with n=%d, want 50", index.lastN)
	}

	// Non-positive override is ignored.
	svc.WithOversample(0)
	if _, err := svc.Recommend(context.Background(), domain.QueryRequest{Query: "qa", K: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.lastN != 50 {
		t.Errorf("index searched with n=%d after zero override, want 50", index.lastN)
	}
}
