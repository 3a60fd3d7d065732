package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"go.uber.org/zap"
)

type outbound struct {
	collection string
	payload    []byte
}

// Hub maintains the set of connected clients and pushes change events to the
// clients watching the changed collection.
type Hub struct {
	logger *zap.Logger

	// Registered clients.
	clients map[*Client]bool

	// Change events waiting to be fanned out.
	broadcast chan outbound

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger.With(zap.String("component", "ws-hub")),
		broadcast:  make(chan outbound),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("client registered", zap.String("addr", client.remoteAddr()), zap.Int("clients", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("client unregistered", zap.String("addr", client.remoteAddr()), zap.Int("clients", len(h.clients)))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.wants(msg.collection) {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer; it reconnects and reloads
					close(client.send)
					delete(h.clients, client)
				}
			}
		case <-h.stop:
			h.logger.Info("stopping hub", zap.Int("clients", len(h.clients)))
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// Notify is a change bus handler that queues event for every interested
// client. It returns immediately once the hub has stopped.
func (h *Hub) Notify(_ context.Context, event domain.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("encode change event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- outbound{collection: event.Collection, payload: payload}:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
