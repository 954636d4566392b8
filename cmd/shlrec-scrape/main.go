// Command shlrec-scrape walks the public assessment catalog and writes
// the catalog JSON file consumed by shlrec-ingest.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/config"
	logpkg "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/logger"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/scrape"
)

func main() {
	var (
		out     = flag.String("out", "catalog.json", "output JSON file")
		baseURL = flag.String("base-url", scrape.DefaultBaseURL, "catalog base URL")
		pages   = flag.Int("pages", scrape.DefaultPages, "number of listing pages")
		details = flag.Bool("details", true, "visit product pages for description and job levels")
		delay   = flag.Duration("delay", time.Second, "delay between requests")
	)
	flag.Parse()

	logger, err := logpkg.New(config.GetEnv(), "")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	scraper := scrape.New(logger).
		WithBaseURL(*baseURL).
		WithPages(*pages).
		WithDelay(*delay)

	products, err := scraper.ScrapeCatalog()
	if err != nil {
		logger.Fatal("Catalog scrape failed", zap.Error(err))
	}
	if len(products) == 0 {
		logger.Fatal("No products scraped; refusing to write an empty catalog")
	}

	if *details {
		if err := scraper.EnrichDetails(products); err != nil {
			logger.Fatal("Detail scrape failed", zap.Error(err))
		}
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode catalog", zap.Error(err))
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Fatal("Failed to write catalog", zap.String("file", *out), zap.Error(err))
	}

	logger.Info("Catalog written",
		zap.String("file", *out),
		zap.Int("products", len(products)),
	)
}
