package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"go.uber.org/zap"
)

var busEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "artistly_bus_events_total",
	Help: "Change events delivered by the bus, by collection and source.",
}, []string{"collection", "source"})

type subscription struct {
	collection string
	handler    domain.Handler
	active     atomic.Bool
}

// Bus delivers collection change signals to subscribers in this process and
// forwards them to relays for other processes. Handlers run synchronously in
// the publishing goroutine, in subscription order, without any bus lock held.
type Bus struct {
	origin string
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	subs   []*subscription
	relays []domain.Relay
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		origin: uuid.NewString(),
		logger: logger,
		now:    time.Now,
	}
}

// Origin identifies this bus in events it publishes.
func (b *Bus) Origin() string {
	return b.origin
}

// Subscribe registers handler for one collection, or for every collection when
// collection is domain.AllCollections. The returned func is idempotent.
func (b *Bus) Subscribe(collection string, handler domain.Handler) func() {
	sub := &subscription{collection: collection, handler: handler}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return func() {
		if !sub.active.Swap(false) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s == sub {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				break
			}
		}
	}
}

// SubscribeAll registers handler for every collection.
func (b *Bus) SubscribeAll(handler domain.Handler) func() {
	return b.Subscribe(domain.AllCollections, handler)
}

// AddRelay forwards every subsequently published event through relay.
func (b *Bus) AddRelay(relay domain.Relay) {
	b.mu.Lock()
	b.relays = append(b.relays, relay)
	b.mu.Unlock()
}

// Publish signals that collection changed. Local subscribers have all run when
// Publish returns; relay failures are logged and never reach the caller.
func (b *Bus) Publish(ctx context.Context, collection string) {
	event := domain.ChangeEvent{Collection: collection, Origin: b.origin, At: b.now().UTC()}
	b.dispatch(ctx, event, "local")

	b.mu.RLock()
	relays := append([]domain.Relay(nil), b.relays...)
	b.mu.RUnlock()

	for _, relay := range relays {
		if err := relay.Forward(ctx, event); err != nil {
			b.logger.Warn("relay forward failed", zap.String("collection", collection), zap.Error(err))
		}
	}
}

// Deliver hands an event received from a relay to local subscribers only.
// Events this bus published itself are dropped.
func (b *Bus) Deliver(ctx context.Context, event domain.ChangeEvent) {
	if event.Origin == b.origin {
		return
	}
	b.dispatch(ctx, event, "relay")
}

func (b *Bus) dispatch(ctx context.Context, event domain.ChangeEvent, source string) {
	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.collection == event.Collection || s.collection == domain.AllCollections || event.Collection == domain.AllCollections {
			subs = append(subs, s)
		}
	}
	b.mu.RUnlock()

	busEvents.WithLabelValues(event.Collection, source).Inc()
	for _, s := range subs {
		if s.active.Load() {
			s.handler(ctx, event)
		}
	}
}
