package cmd

import (
	"fmt"

	"shortage-tracker/core/config"
	"shortage-tracker/core/database"
	"shortage-tracker/core/logger"
	"shortage-tracker/core/storage"
	inventoryModels "shortage-tracker/feature/inventory/models"
	userModels "shortage-tracker/feature/users/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// cliEnv bundles the shared dependencies of the CLI commands.
type cliEnv struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// newCliEnv loads config, logger and database for a CLI command.
func newCliEnv() (*cliEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db, &inventoryModels.Record{}, &userModels.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &cliEnv{cfg: cfg, logger: l, db: db}, nil
}

// storageClient connects to object storage. Commands that only touch the
// database skip this.
func (e *cliEnv) storageClient() (storage.Client, error) {
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return client, nil
}
