package events

import (
	"encoding/json"
	"sync"

	"github.com/printshophq/printshop-admin/internal/logger"
	"github.com/printshophq/printshop-admin/internal/metrics"
)

// conn is the slice of websocket.Conn the hub needs. Narrowed to an
// interface so tests can register fakes.
type conn interface {
	WriteMessage(messageType int, data []byte) error
}

const textMessage = 1

// Hub tracks connected websocket clients and broadcasts events to all of
// them. Clients that fail a write are dropped.
type Hub struct {
	mu    sync.Mutex
	conns map[conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: map[conn]bool{}}
}

func (h *Hub) Register(c conn) {
	h.mu.Lock()
	h.conns[c] = true
	n := len(h.conns)
	h.mu.Unlock()

	metrics.WebsocketClients.Set(float64(n))
}

func (h *Hub) Unregister(c conn) {
	h.mu.Lock()
	delete(h.conns, c)
	n := len(h.conns)
	h.mu.Unlock()

	metrics.WebsocketClients.Set(float64(n))
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) Publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("marshal event", err, map[string]interface{}{"event": ev.Name})
		return
	}

	h.mu.Lock()
	var dead []conn
	for c := range h.conns {
		if err := c.WriteMessage(textMessage, payload); err != nil {
			dead = append(dead, c)
		}
	}
	for _, c := range dead {
		delete(h.conns, c)
	}
	n := len(h.conns)
	h.mu.Unlock()

	metrics.WebsocketClients.Set(float64(n))
	metrics.EventsBroadcastTotal.Inc()
}
