package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saransh1220/artistly/internal/modules/changebus/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServeWs_EndToEnd(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	defer hub.Stop()

	registered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r, []string{"artistly_artists"})
		registered <- struct{}{}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("client never registered")
	}

	hub.Notify(context.Background(), domain.ChangeEvent{Collection: "artistly_bookings"})
	hub.Notify(context.Background(), domain.ChangeEvent{Collection: "artistly_artists", Origin: "o"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, body, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)

	var ev domain.ChangeEvent
	require.NoError(t, json.Unmarshal(body, &ev))
	assert.Equal(t, "artistly_artists", ev.Collection)
	assert.Equal(t, "o", ev.Origin)
}

func TestServeWs_UpgradeFailure(t *testing.T) {
	hub := NewHub(zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	w := httptest.NewRecorder()

	ServeWs(hub, w, req, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
