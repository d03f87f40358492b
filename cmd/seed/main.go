package main

import (
	"context"
	"log"

	"assistmenow/internal/config"
	"assistmenow/internal/logging"
	"assistmenow/internal/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Seeding a memory store from a separate process has no effect.
	cfg.StoreBackend = config.BackendPostgres

	ctx := context.Background()
	stores, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer stores.Close()

	if err := stores.Seed(ctx, logger); err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}
}
