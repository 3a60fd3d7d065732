// Package backend opens the record store configured for the server so CLI
// commands operate on the same data.
package backend

import (
	"context"
	"fmt"

	"github.com/saransh1220/artistly/internal/modules/changebus"
	"github.com/saransh1220/artistly/internal/modules/storage"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"go.uber.org/zap"
)

// Backend is an opened store plus a change bus relaying to running servers.
type Backend struct {
	Config  config.Config
	Logger  *zap.Logger
	Storage *storage.Module
	Changes *changebus.Module
}

// Open is swapped out by tests.
var Open = open

func open(ctx context.Context) (*Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewLogger(logging.Config{Component: "artistctl", Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}

	store, err := storage.NewModule(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	b := New(cfg, logger, store)

	switch {
	case store.Redis() != nil:
		err = b.Changes.AttachRedis(ctx, store.Redis(), cfg.Storage.ChangeChannel)
	case store.DB() != nil:
		err = b.Changes.AttachPostgres(ctx, store.DB(), cfg.Database.DSN(), cfg.Storage.ChangeChannel)
	}
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("attach change bridge: %w", err)
	}
	return b, nil
}

// New wraps an already opened storage module.
func New(cfg config.Config, logger *zap.Logger, store *storage.Module) *Backend {
	return &Backend{
		Config:  cfg,
		Logger:  logger,
		Storage: store,
		Changes: changebus.NewModule(logger),
	}
}

func (b *Backend) Close() {
	b.Changes.Close()
	if err := b.Storage.Close(); err != nil {
		b.Logger.Warn("close storage", zap.Error(err))
	}
	_ = b.Logger.Sync()
}
