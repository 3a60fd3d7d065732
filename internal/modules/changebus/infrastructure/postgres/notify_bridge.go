package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"go.uber.org/zap"
)

const (
	minReconnect = 10 * time.Second
	maxReconnect = time.Minute
)

// NotifyBridge relays change events between instances sharing one Postgres
// database, using NOTIFY to send and a pq.Listener to receive.
type NotifyBridge struct {
	db      *sqlx.DB
	dsn     string
	channel string
	sink    domain.Sink
	logger  *zap.Logger

	listener *pq.Listener
	done     chan struct{}
}

func NewNotifyBridge(db *sqlx.DB, dsn, channel string, sink domain.Sink, logger *zap.Logger) *NotifyBridge {
	return &NotifyBridge{
		db:      db,
		dsn:     dsn,
		channel: channel,
		sink:    sink,
		logger:  logger.With(zap.String("component", "pg-bridge"), zap.String("channel", channel)),
	}
}

func (b *NotifyBridge) Forward(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode change event: %w", err)
	}
	if _, err := b.db.ExecContext(ctx, `SELECT pg_notify($1, $2)`, b.channel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	return nil
}

// Start opens a dedicated listening connection.
func (b *NotifyBridge) Start(_ context.Context) error {
	listener := pq.NewListener(b.dsn, minReconnect, maxReconnect, b.reportEvent)
	if err := listener.Listen(b.channel); err != nil {
		_ = listener.Close()
		return fmt.Errorf("listen %s: %w", b.channel, err)
	}
	b.listener = listener
	b.done = make(chan struct{})
	go b.listen(listener.Notify)
	b.logger.Info("change bridge listening")
	return nil
}

func (b *NotifyBridge) listen(notifications <-chan *pq.Notification) {
	defer close(b.done)
	for n := range notifications {
		// nil after a reconnect: anything sent while disconnected was missed
		if n == nil {
			b.logger.Info("listener reconnected, resyncing all collections")
			b.sink.Deliver(context.Background(), resyncEvent())
			continue
		}
		event, err := decodeNotification(n.Extra)
		if err != nil {
			b.logger.Warn("dropping malformed change event", zap.Error(err))
			continue
		}
		b.sink.Deliver(context.Background(), event)
	}
}

func (b *NotifyBridge) reportEvent(ev pq.ListenerEventType, err error) {
	if err != nil {
		b.logger.Warn("listener connection event", zap.Int("event", int(ev)), zap.Error(err))
	}
}

func (b *NotifyBridge) Close() error {
	if b.listener == nil {
		return nil
	}
	err := b.listener.Close()
	<-b.done
	b.listener = nil
	return err
}

func resyncEvent() domain.ChangeEvent {
	return domain.ChangeEvent{Collection: domain.AllCollections, At: time.Now().UTC()}
}

func decodeNotification(payload string) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	if event.Collection == "" {
		return domain.ChangeEvent{}, fmt.Errorf("change event without collection")
	}
	return event, nil
}
