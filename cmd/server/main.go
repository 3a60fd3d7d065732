package main

import (
	"context"
	"log"

	"github.com/saransh1220/artistly/internal/gateway"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"github.com/saransh1220/artistly/pkg/migration"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewLogger(logging.Config{Component: "api-server", Level: cfg.Log.Level})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Storage.Backend == "postgres" {
		if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Storage.MigrationsPath, logger); err != nil {
			logger.Fatal("run migrations", zap.Error(err))
		}
	}

	ctx := context.Background()
	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init app", zap.Error(err))
	}
	defer app.Close()

	server := gateway.NewServer(cfg.Server.Port, app.Handler(), cfg.Server.ShutdownTimeout, logger)
	if err := server.Start(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
