package cmd

import (
	"context"
	"fmt"

	"order-items/core/config"
	"order-items/core/database"
	"order-items/core/lock"
	"order-items/core/logger"
	"order-items/core/storage"
	"order-items/feature/lineitems"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	client  storage.Client
	service *lineitems.Service
}

// bootstrap loads configuration and wires the database, storage, lock and item service.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := lineitems.NewStore(db, cfg.Database.TablePrefix)
	if cfg.Database.Driver == "sqlite" {
		// Standalone sqlite has no host installation to own the tables.
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
	}

	var client storage.Client
	if cfg.Storage.Enabled {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	locker := lock.New(cfg.Lock)
	if cfg.Lock.RedisAddr != "" {
		logg.Info("Per-document locking enabled", zap.String("redis", cfg.Lock.RedisAddr))
	}

	return &runtime{
		cfg:     cfg,
		logger:  logg,
		db:      db,
		client:  client,
		service: lineitems.NewService(store, cfg.Items, locker, client, cfg.Storage.Bucket, logg),
	}, nil
}
