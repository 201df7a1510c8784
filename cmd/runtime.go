package cmd

import (
	"context"
	"fmt"

	"zoo-manager/core/config"
	"zoo-manager/core/database"
	"zoo-manager/core/logger"
	"zoo-manager/core/sequence"
	"zoo-manager/core/storage"
	"zoo-manager/feature/animals"
	"zoo-manager/feature/employees"
	"zoo-manager/feature/events"
	"zoo-manager/feature/souvenirs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// schemaModels lists every table owned by the service.
func schemaModels() []any {
	return []any{
		&animals.Animal{},
		&employees.Employee{},
		&events.Event{},
		&souvenirs.Souvenir{},
		&sequence.Counter{},
	}
}

// runtime bundles the dependencies shared by the commands.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// newRuntime loads the configuration and opens the database. The storage
// client stays nil unless storage.enabled is set.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name))

	rt := &runtime{cfg: cfg, logger: logg, db: db}
	if !cfg.Storage.Enabled {
		return rt, nil
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return nil, err
	}
	rt.store = store
	logg.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	return rt, nil
}
