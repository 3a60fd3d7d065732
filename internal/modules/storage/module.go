package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/artistly/internal/modules/storage/domain"
	"github.com/saransh1220/artistly/internal/modules/storage/infrastructure/file"
	"github.com/saransh1220/artistly/internal/modules/storage/infrastructure/memory"
	"github.com/saransh1220/artistly/internal/modules/storage/infrastructure/metrics"
	"github.com/saransh1220/artistly/internal/modules/storage/infrastructure/postgres"
	redisstore "github.com/saransh1220/artistly/internal/modules/storage/infrastructure/redis"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/database"
	"go.uber.org/zap"
)

const redisKeyPrefix = "artistly:kv:"

// Module owns the record store backend and the connections behind it.
type Module struct {
	backend string
	store   domain.Store
	redis   *redis.Client
	db      *sqlx.DB
}

// NewModule opens the backend selected by cfg.Storage.Backend.
func NewModule(cfg config.Config, logger *zap.Logger) (*Module, error) {
	m := &Module{backend: cfg.Storage.Backend}

	var raw domain.Store
	switch cfg.Storage.Backend {
	case "memory":
		raw = memory.NewStore()
	case "file":
		fs, err := file.NewStore(cfg.Storage.FileDir)
		if err != nil {
			return nil, err
		}
		raw = fs
	case "redis":
		client, err := database.NewRedis(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		m.redis = client
		raw = redisstore.NewStore(client, redisKeyPrefix)
	case "postgres":
		db, err := database.NewPostgresDB(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		m.db = db
		raw = postgres.NewPgStore(db)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	m.store = metrics.NewInstrumentedStore(raw, cfg.Storage.Backend)
	logger.Info("record store ready", zap.String("backend", cfg.Storage.Backend))
	return m, nil
}

// NewModuleWithStore wraps an existing store; used by tests and tools.
func NewModuleWithStore(backend string, store domain.Store) *Module {
	return &Module{backend: backend, store: metrics.NewInstrumentedStore(store, backend)}
}

func (m *Module) Store() domain.Store {
	return m.store
}

func (m *Module) Backend() string {
	return m.backend
}

// Redis returns the client behind the redis backend, nil for other backends.
func (m *Module) Redis() *redis.Client {
	return m.redis
}

// DB returns the connection pool behind the postgres backend, nil otherwise.
func (m *Module) DB() *sqlx.DB {
	return m.db
}

func (m *Module) Close() error {
	if m.redis != nil {
		if err := m.redis.Close(); err != nil {
			return err
		}
	}
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
