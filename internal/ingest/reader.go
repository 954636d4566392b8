// Package ingest loads scraped catalog records and indexes them with
// their embedding vectors.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// CatalogRecord is one entry of the scraped catalog JSON file.
type CatalogRecord struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	TestType        string `json:"test_type"`
	RemoteSupport   string `json:"remote_support"`
	AdaptiveSupport string `json:"adaptive_support"`
	JobLevels       string `json:"job_levels"`
	LongDescription string `json:"long_description"`
}

// ReadCatalog loads catalog records from a JSON file and converts them
// to domain items. Records without a name are rejected.
func ReadCatalog(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var records []CatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	items := make([]domain.Item, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("record %d: name is required", i)
		}
		items = append(items, domain.Item{
			ID:              ItemID(rec),
			Name:            rec.Name,
			URL:             rec.URL,
			TestType:        rec.TestType,
			RemoteSupport:   rec.RemoteSupport,
			AdaptiveSupport: rec.AdaptiveSupport,
			JobLevels:       rec.JobLevels,
			LongDescription: rec.LongDescription,
		})
	}
	return items, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// ItemID derives a stable item id: the last URL path segment when the
// record has a URL, a slug of the name otherwise.
func ItemID(rec CatalogRecord) string {
	if rec.URL != "" {
		trimmed := strings.TrimRight(rec.URL, "/")
		if idx := strings.LastIndex(trimmed, "/"); idx >= 0 && idx < len(trimmed)-1 {
			return trimmed[idx+1:]
		}
	}
	slug := slugStrip.ReplaceAllString(strings.ToLower(rec.Name), "-")
	return strings.Trim(slug, "-")
}
