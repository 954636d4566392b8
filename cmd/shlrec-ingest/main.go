// Command shlrec-ingest loads a scraped catalog JSON file, embeds every
// item and writes hashes + vectors to the database.
package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/config"
	dbRedis "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/db/redis"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/ingest"
	logpkg "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/logger"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/metrics"
	catalogrepo "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/repository/catalog"
	openaiEmb "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/transport/openai"
)

func main() {
	var (
		file      = flag.String("file", "catalog.json", "catalog JSON file to ingest")
		reset     = flag.Bool("reset", false, "drop and recreate the index before ingesting")
		batchSize = flag.Int("batch", ingest.DefaultBatchSize, "items per embedding batch")
	)
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	metrics.RegisterEmbeddingMetrics()

	embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	catalogRepo := catalogrepo.New(store, cfg.Embedding.Dimensions).WithHNSW(catalogrepo.HNSWConfig{
		M:           cfg.Index.HNSWM,
		EFConstruct: cfg.Index.HNSWEFConstruct,
	})

	items, err := ingest.ReadCatalog(*file)
	if err != nil {
		logger.Fatal("Failed to read catalog", zap.String("file", *file), zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.String("file", *file), zap.Int("items", len(items)))

	if *reset {
		if err := catalogRepo.ResetIndex(ctx); err != nil {
			logger.Fatal("Failed to reset index", zap.Error(err))
		}
		logger.Info("Index reset")
	}

	ingester := ingest.New(catalogRepo, embedder, logger).WithBatchSize(*batchSize)

	report, err := ingester.Run(ctx, items)
	if err != nil {
		logger.Fatal("Ingestion failed",
			zap.Int("ingested", report.Ingested),
			zap.Error(err),
		)
	}

	logger.Info("Ingestion complete",
		zap.Int("items", report.Ingested),
		zap.Int("batches", report.Batches),
		zap.Int("tokens", report.TotalTokens),
	)
}
