package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}
	return path
}

func TestReadCatalog(t *testing.T) {
	path := writeTempCatalog(t, `[
		{
			"name": "Verify G+",
			"url": "https://www.shl.com/solutions/products/product-catalog/view/verify-g/",
			"test_type": "K, A",
			"remote_support": "Yes",
			"adaptive_support": "Yes",
			"job_levels": "Graduate, Manager",
			"long_description": "General cognitive ability test."
		},
		{
			"name": "OPQ",
			"url": "https://www.shl.com/view/opq/",
			"test_type": "P"
		}
	]`)

	items, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != "verify-g" {
		t.Errorf("id = %q, want verify-g", first.ID)
	}
	if first.Name != "Verify G+" || first.TestType != "K, A" {
		t.Errorf("item = %+v", first)
	}
	if first.RemoteSupport != "Yes" || first.AdaptiveSupport != "Yes" {
		t.Errorf("support flags = %+v", first)
	}
	if first.LongDescription != "General cognitive ability test." {
		t.Errorf("description = %q", first.LongDescription)
	}

	// Absent metadata stays empty, never errors.
	second := items[1]
	if second.RemoteSupport != "" || second.JobLevels != "" {
		t.Errorf("partial record = %+v", second)
	}
}

func TestReadCatalog_MissingName(t *testing.T) {
	path := writeTempCatalog(t, `[{"url": "https://example.com/x/"}]`)

	if _, err := ReadCatalog(path); err == nil {
		t.Fatal("expected error for record without name")
	}
}

func TestReadCatalog_BadJSON(t *testing.T) {
	path := writeTempCatalog(t, `{"not": "an array"}`)

	if _, err := ReadCatalog(path); err == nil {
		t.Fatal("expected error for non-array payload")
	}
}

func TestReadCatalog_FileMissing(t *testing.T) {
	if _, err := ReadCatalog(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestItemID(t *testing.T) {
	tests := []struct {
		name string
		rec  CatalogRecord
		want string
	}{
		{
			"url with trailing slash",
			CatalogRecord{URL: "https://www.shl.com/view/verify-g/"},
			"verify-g",
		},
		{
			"url without trailing slash",
			CatalogRecord{URL: "https://www.shl.com/view/opq"},
			"opq",
		},
		{
			"no url falls back to name slug",
			CatalogRecord{Name: "Verify G+ Assessment"},
			"verify-g-assessment",
		},
		{
			"name with punctuation",
			CatalogRecord{Name: ".NET Framework 4.5"},
			"net-framework-4-5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ItemID(tc.rec); got != tc.want {
				t.Errorf("ItemID = %q, want %q", got, tc.want)
			}
		})
	}
}
