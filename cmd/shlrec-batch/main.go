// Command shlrec-batch submits a CSV of queries to a running
// recommendation server and writes a Query,URL1..URLn result CSV.
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/batch"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/config"
	logpkg "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/logger"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/pkg/sdk"
)

func main() {
	var (
		in     = flag.String("in", "queries.csv", "input CSV with one query per row")
		out    = flag.String("out", "results.csv", "output CSV file")
		server = flag.String("server", "http://localhost:8080", "recommendation server base URL")
		apiKey = flag.String("api-key", "", "bearer token for the server")
		topK   = flag.Int("k", batch.DefaultTopK, "URLs per query")
	)
	flag.Parse()

	logger, err := logpkg.New(config.GetEnv(), "")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	var opts []sdk.Option
	if *apiKey != "" {
		opts = append(opts, sdk.WithAPIKey(*apiKey))
	}
	client := sdk.New(*server, opts...)

	inFile, err := os.Open(*in)
	if err != nil {
		logger.Fatal("Failed to open input", zap.String("file", *in), zap.Error(err))
	}
	defer inFile.Close()

	outFile, err := os.Create(*out)
	if err != nil {
		logger.Fatal("Failed to create output", zap.String("file", *out), zap.Error(err))
	}
	defer outFile.Close()

	runner := batch.NewRunner(client, logger).WithTopK(*topK)

	if err := runner.Process(context.Background(), inFile, outFile); err != nil {
		logger.Fatal("Batch run failed", zap.Error(err))
	}

	logger.Info("Batch complete",
		zap.String("in", *in),
		zap.String("out", *out),
	)
}
