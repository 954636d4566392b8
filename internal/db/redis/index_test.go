package redis

import (
	"reflect"
	"testing"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/db"
)

func TestBuildCreateArgs(t *testing.T) {
	def := &db.IndexDefinition{
		Name:     "idx",
		Prefixes: []string{"app:item:"},
		Fields: []db.IndexField{
			{Name: "name", Type: db.IndexFieldText},
			{Name: "test_type", Type: db.IndexFieldTag, TagSeparator: ","},
			{
				Name:              "embedding",
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         384,
				VectorDistance:    db.DistanceCosine,
				VectorM:           32,
				VectorEFConstruct: 400,
			},
		},
	}

	args, err := buildCreateArgs(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"idx", "ON", "HASH",
		"PREFIX", "1", "app:item:",
		"SCHEMA",
		"name", "TEXT",
		"test_type", "TAG", "SEPARATOR", ",",
		"embedding", "VECTOR", "HNSW", "10",
		"TYPE", "FLOAT32",
		"DIM", "384",
		"DISTANCE_METRIC", "COSINE",
		"M", "32",
		"EF_CONSTRUCTION", "400",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args:\ngot:  %v\nwant: %v", args, want)
	}
}

func TestBuildCreateArgs_FlatVectorDefaults(t *testing.T) {
	def := &db.IndexDefinition{
		Name: "idx",
		Fields: []db.IndexField{
			{Name: "vec", Type: db.IndexFieldVector, VectorDim: 4},
		},
	}

	args, err := buildCreateArgs(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"idx", "ON", "HASH", "SCHEMA",
		"vec", "VECTOR", "FLAT", "6",
		"TYPE", "FLOAT32",
		"DIM", "4",
		"DISTANCE_METRIC", "COSINE",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args:\ngot:  %v\nwant: %v", args, want)
	}
}

func TestBuildCreateArgs_VectorWithoutDim(t *testing.T) {
	def := &db.IndexDefinition{
		Name: "idx",
		Fields: []db.IndexField{
			{Name: "vec", Type: db.IndexFieldVector},
		},
	}

	if _, err := buildCreateArgs(def); err == nil {
		t.Fatal("expected error for vector field without DIM")
	}
}
