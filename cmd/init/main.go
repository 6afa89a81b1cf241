package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/config"
	"github.com/talkifydocs/ingest-backend/pkg/client"
	"github.com/talkifydocs/ingest-backend/pkg/logger"
)

const initTimeout = 2 * time.Minute

// Prepares the vector index before the first pipeline run. The Milvus
// collection or the Weaviate class is created for the configured embedding
// dimensionality if it doesn't exist.
func main() {
	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	logger, _ := logger.GetZapLogger(ctx)
	defer func() {
		// can't handle the error due to https://github.com/uber-go/zap/issues/880
		_ = logger.Sync()
	}()

	cfg := config.Config
	_, closeIndex, err := client.NewVectorIndex(ctx, cfg.VectorIndex, cfg.Embedding.Dimensionality)
	if err != nil {
		logger.Fatal("Failed to initialize vector index", zap.Error(err))
	}
	defer func() {
		if err := closeIndex(); err != nil {
			logger.Warn("Failed to close vector index client", zap.Error(err))
		}
	}()

	logger.Info("Vector index is ready",
		zap.String("provider", cfg.VectorIndex.Provider),
		zap.Int("dimensionality", cfg.Embedding.Dimensionality))
}
