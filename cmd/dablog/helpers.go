package main

import (
	"context"
	"os"

	"github.com/dablog/dablog/internal/config"
	"github.com/dablog/dablog/internal/storage"
	"go.uber.org/zap"
)

// loadConfig resolves the configuration for this invocation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(dbFlag, os.Getenv)
	if err != nil {
		return nil, &configError{err: err}
	}
	logger.Debug("resolved config", zap.String("db_path", cfg.DBPath), zap.String("source", cfg.Source))
	return cfg, nil
}

// openDatabase opens the configured database, which must already be initialized.
// The caller is responsible for calling Close() on the returned DB.
func openDatabase(ctx context.Context) (*storage.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, cfg.DBPath, storage.WithLogger(logger))
}
