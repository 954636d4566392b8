package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/db"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

func TestEnsureIndex_CreatesWhenMissing(t *testing.T) {
	repo, ms := newTestRepo(t)

	var created *db.IndexDefinition
	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	ms.createIndexFn = func(_ context.Context, def *db.IndexDefinition) error {
		created = def
		return nil
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected CreateIndex to be called")
	}
	if created.Name != domain.ItemIndexName {
		t.Errorf("index name = %q, want %q", created.Name, domain.ItemIndexName)
	}
	if len(created.Prefixes) != 1 || created.Prefixes[0] != domain.ItemKeyPrefix {
		t.Errorf("prefixes = %v, want [%s]", created.Prefixes, domain.ItemKeyPrefix)
	}

	var vectorField *db.IndexField
	for i := range created.Fields {
		if created.Fields[i].Type == db.IndexFieldVector {
			vectorField = &created.Fields[i]
		}
	}
	if vectorField == nil {
		t.Fatal("index definition has no vector field")
	}
	if vectorField.VectorDim != 4 || vectorField.VectorDistance != db.DistanceCosine {
		t.Errorf("vector field = %+v, want dim 4 cosine", vectorField)
	}
}

func TestEnsureIndex_SkipsWhenPresent(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		t.Error("CreateIndex should not be called")
		return nil
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnsureIndex_RaceOnCreateIsNotAnError(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.indexExistsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		return db.ErrIndexExists
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResetIndex_ToleratesMissingIndex(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.dropIndexFn = func(_ context.Context, _ string) error { return db.ErrIndexNotFound }
	created := false
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		created = true
		return nil
	}

	if err := repo.ResetIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected CreateIndex to be called")
	}
}

func TestUpsert_WritesVectorBlob(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotKey string
	var gotFields map[string]string
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		gotKey = key
		gotFields = fields
		return nil
	}

	item := domain.Item{ID: "7", Name: "Verify Numerical", TestType: "K"}
	if err := repo.Upsert(context.Background(), item, testVector()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != domain.ItemKey("7") {
		t.Errorf("key = %q, want %q", gotKey, domain.ItemKey("7"))
	}
	if gotFields[domain.FieldName] != "Verify Numerical" {
		t.Errorf("name field = %q", gotFields[domain.FieldName])
	}
	blob := gotFields[domain.FieldVector]
	if len(blob) != 16 { // 4 float32s, little-endian
		t.Errorf("vector blob length = %d, want 16", len(blob))
	}
}

func TestUpsert_DimensionMismatch(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Upsert(context.Background(), domain.Item{ID: "7"}, []float32{0.1})
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestUpsertBatch(t *testing.T) {
	repo, ms := newTestRepo(t)

	var got []db.HashSetItem
	ms.hsetMultiFn = func(_ context.Context, items []db.HashSetItem) error {
		got = items
		return nil
	}

	items := []domain.Item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	vectors := [][]float32{testVector(), testVector()}

	if err := repo.UpsertBatch(context.Background(), items, vectors); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 batch items, got %d", len(got))
	}
	if got[1].Key != domain.ItemKey("2") {
		t.Errorf("second key = %q", got[1].Key)
	}
}

func TestUpsertBatch_LengthMismatch(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.UpsertBatch(context.Background(), []domain.Item{{ID: "1"}}, nil)
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestGet(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != domain.ItemKey("3") {
			t.Errorf("key = %q", key)
		}
		return map[string]string{domain.FieldName: "OPQ32"}, nil
	}

	item, err := repo.Get(context.Background(), "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "OPQ32" || item.ID != "3" {
		t.Errorf("item = %+v", item)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{}, nil
	}

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchCountFn = func(_ context.Context, index, query string) (int, error) {
		if index != domain.ItemIndexName || query != "*" {
			t.Errorf("unexpected count query: %s %s", index, query)
		}
		return 377, nil
	}

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 377 {
		t.Errorf("count = %d, want 377", n)
	}
}
