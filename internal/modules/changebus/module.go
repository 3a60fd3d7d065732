package changebus

import (
	"context"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/artistly/internal/modules/changebus/application"
	"github.com/saransh1220/artistly/internal/modules/changebus/infrastructure/postgres"
	redisbridge "github.com/saransh1220/artistly/internal/modules/changebus/infrastructure/redis"
	"github.com/saransh1220/artistly/internal/modules/changebus/infrastructure/websocket"
	changebus_http "github.com/saransh1220/artistly/internal/modules/changebus/interfaces/http"
	"go.uber.org/zap"
)

type Module struct {
	bus     *application.Bus
	hub     *websocket.Hub
	handler *changebus_http.ChangeHandler
	logger  *zap.Logger

	unsubscribeHub func()
	bridges        []io.Closer
}

func NewModule(logger *zap.Logger) *Module {
	bus := application.NewBus(logger.With(zap.String("component", "changebus")))
	hub := websocket.NewHub(logger)
	go hub.Run()

	return &Module{
		bus:            bus,
		hub:            hub,
		handler:        changebus_http.NewChangeHandler(hub),
		logger:         logger,
		unsubscribeHub: bus.SubscribeAll(hub.Notify),
	}
}

// AttachRedis relays events to other instances through Redis Pub/Sub.
func (m *Module) AttachRedis(ctx context.Context, client *redis.Client, channel string) error {
	bridge := redisbridge.NewBridge(client, channel, m.bus, m.logger)
	if err := bridge.Start(ctx); err != nil {
		return err
	}
	m.bus.AddRelay(bridge)
	m.bridges = append(m.bridges, bridge)
	return nil
}

// AttachPostgres relays events to other instances through LISTEN/NOTIFY.
func (m *Module) AttachPostgres(ctx context.Context, db *sqlx.DB, dsn, channel string) error {
	bridge := postgres.NewNotifyBridge(db, dsn, channel, m.bus, m.logger)
	if err := bridge.Start(ctx); err != nil {
		return err
	}
	m.bus.AddRelay(bridge)
	m.bridges = append(m.bridges, bridge)
	return nil
}

func (m *Module) Bus() *application.Bus {
	return m.bus
}

func (m *Module) HTTPHandler() *changebus_http.ChangeHandler {
	return m.handler
}

func (m *Module) Close() {
	for _, b := range m.bridges {
		if err := b.Close(); err != nil {
			m.logger.Warn("close change bridge", zap.Error(err))
		}
	}
	m.unsubscribeHub()
	m.hub.Stop()
}
