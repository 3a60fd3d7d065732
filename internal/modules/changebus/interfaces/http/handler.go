package http

import (
	"net/http"
	"strings"

	"github.com/saransh1220/artistly/internal/modules/changebus/infrastructure/websocket"
)

type ChangeHandler struct {
	hub *websocket.Hub
}

func NewChangeHandler(hub *websocket.Hub) *ChangeHandler {
	return &ChangeHandler{hub: hub}
}

// Stream upgrades to a websocket that receives change events. The optional
// collections query parameter is a comma separated list of collection keys.
func (h *ChangeHandler) Stream(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, w, r, parseCollections(r.URL.Query().Get("collections")))
}

func parseCollections(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
