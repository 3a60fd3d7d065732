package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"go.uber.org/zap"
)

// Bridge relays change events between server instances over a Redis Pub/Sub
// channel. Every instance publishes its own events and delivers everyone's;
// the bus drops the ones it originated.
type Bridge struct {
	client  *redis.Client
	channel string
	sink    domain.Sink
	logger  *zap.Logger

	pubsub *redis.PubSub
	done   chan struct{}
}

func NewBridge(client *redis.Client, channel string, sink domain.Sink, logger *zap.Logger) *Bridge {
	return &Bridge{
		client:  client,
		channel: channel,
		sink:    sink,
		logger:  logger.With(zap.String("component", "redis-bridge"), zap.String("channel", channel)),
	}
}

// Forward publishes a local event to the other instances.
func (b *Bridge) Forward(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode change event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Start subscribes to the channel and returns once the subscription is
// confirmed. Messages are delivered from a background goroutine until Close.
func (b *Bridge) Start(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}
	b.pubsub = pubsub
	b.done = make(chan struct{})
	go b.listen(pubsub.Channel())
	b.logger.Info("change bridge listening")
	return nil
}

func (b *Bridge) listen(messages <-chan *redis.Message) {
	defer close(b.done)
	for msg := range messages {
		var event domain.ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			b.logger.Warn("dropping malformed change event", zap.Error(err))
			continue
		}
		b.sink.Deliver(context.Background(), event)
	}
}

func (b *Bridge) Close() error {
	if b.pubsub == nil {
		return nil
	}
	err := b.pubsub.Close()
	<-b.done
	b.pubsub = nil
	return err
}
