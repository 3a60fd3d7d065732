package domain

import (
	"context"
	"time"
)

// AllCollections subscribes a handler to every collection. As the collection
// of an event it tells every subscriber to re-read.
const AllCollections = "*"

// ChangeEvent signals that a persisted collection changed. It carries no
// payload; subscribers re-read the collection they care about.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Origin     string    `json:"origin"`
	At         time.Time `json:"at"`
}

// Handler reacts to a change event. Handlers run in the publisher's goroutine.
type Handler func(ctx context.Context, event ChangeEvent)

// Relay forwards locally published events to other processes.
type Relay interface {
	Forward(ctx context.Context, event ChangeEvent) error
}

// Notifier is the part of the bus that repositories depend on.
type Notifier interface {
	Publish(ctx context.Context, collection string)
	Subscribe(collection string, handler Handler) (unsubscribe func())
}

// Sink receives events that arrived from another process.
type Sink interface {
	Deliver(ctx context.Context, event ChangeEvent)
}
