package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saransh1220/artistly/internal/gateway"
	"github.com/saransh1220/artistly/internal/gateway/middleware"
	"github.com/saransh1220/artistly/internal/modules/artist"
	"github.com/saransh1220/artistly/internal/modules/booking"
	"github.com/saransh1220/artistly/internal/modules/changebus"
	"github.com/saransh1220/artistly/internal/modules/dashboard"
	"github.com/saransh1220/artistly/internal/modules/identity"
	"github.com/saransh1220/artistly/internal/modules/media"
	"github.com/saransh1220/artistly/internal/modules/storage"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"go.uber.org/zap"
)

// app owns every module of one server process.
type app struct {
	storage   *storage.Module
	changes   *changebus.Module
	identity  *identity.Module
	artists   *artist.Module
	bookings  *booking.Module
	dashboard *dashboard.Module
	media     *media.Module
	handler   http.Handler
	logger    *zap.Logger
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	store, err := storage.NewModule(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	a := &app{storage: store, logger: logger}

	a.changes = changebus.NewModule(logger)
	switch {
	case store.Redis() != nil:
		err = a.changes.AttachRedis(ctx, store.Redis(), cfg.Storage.ChangeChannel)
	case store.DB() != nil:
		err = a.changes.AttachPostgres(ctx, store.DB(), cfg.Database.DSN(), cfg.Storage.ChangeChannel)
	}
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("attach change bridge: %w", err)
	}
	bus := a.changes.Bus()

	a.media, err = media.NewModule(ctx, cfg.FileStorage, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init media: %w", err)
	}

	a.identity = identity.NewModule(store.Store(), bus, cfg, logger)
	a.artists = artist.NewModule(ctx, store.Store(), bus, a.media.Service(), logger)
	a.bookings = booking.NewModule(ctx, store.Store(), bus, logger)
	a.dashboard = dashboard.NewModule(ctx, store.Store(), bus, logger)

	if cfg.Storage.SeedDemoData {
		if err := a.identity.Service().SeedDemoUsers(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("seed users: %w", err)
		}
		if err := a.artists.Service().SeedDemoCatalog(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("seed artists: %w", err)
		}
	}

	a.handler = gateway.NewHandler(gateway.RouterConfig{
		AuthMiddleware:   middleware.NewAuthMiddleware(a.identity.Service()),
		IdentityHandler:  a.identity.HTTPHandler(),
		ArtistHandler:    a.artists.HTTPHandler(),
		BookingHandler:   a.bookings.HTTPHandler(),
		DashboardHandler: a.dashboard.HTTPHandler(),
		ChangeHandler:    a.changes.HTTPHandler(),
		UploadsDir:       a.media.LocalDir(),
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		Logger:           logger,
	})
	return a, nil
}

func (a *app) Handler() http.Handler {
	return a.handler
}

// Close releases modules in reverse start order. Safe on a partly built app.
func (a *app) Close() {
	if a.dashboard != nil {
		a.dashboard.Close()
	}
	if a.bookings != nil {
		a.bookings.Close()
	}
	if a.artists != nil {
		a.artists.Close()
	}
	if a.changes != nil {
		a.changes.Close()
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Warn("close storage", zap.Error(err))
	}
}
