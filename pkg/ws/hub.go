// Package ws fans notification events out to connected browsers.
package ws

import (
	"encoding/json"
	"sync"

	"arenaku/pkg/logger"

	"github.com/gorilla/websocket"
)

type Hub struct {
	mu    sync.Mutex
	conns map[string][]*websocket.Conn
	log   *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		conns: make(map[string][]*websocket.Conn),
		log:   log,
	}
}

func (h *Hub) Add(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[userID] = append(h.conns[userID], conn)
	h.mu.Unlock()
}

func (h *Hub) Remove(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[userID]
	kept := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		delete(h.conns, userID)
	} else {
		h.conns[userID] = kept
	}
}

// SendToUser pushes a JSON payload to every connection the user holds.
// Connections that fail to write are dropped; the browser re-syncs from the
// REST listing on reconnect.
func (h *Hub) SendToUser(userID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to marshal push payload", "user_id", userID, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[userID]
	kept := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			kept = append(kept, conn)
		} else {
			conn.Close()
		}
	}
	if len(kept) == 0 {
		delete(h.conns, userID)
	} else {
		h.conns[userID] = kept
	}
}

// Stop closes every connection. Called on graceful shutdown.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, conns := range h.conns {
		for _, conn := range conns {
			conn.Close()
		}
		delete(h.conns, userID)
	}
}
