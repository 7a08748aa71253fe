// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// RefreshMessage tells connected pages that the poll changed
const RefreshMessage = "refresh"

const writeTimeout = 2 * time.Second

// Hub keeps the open WebSocket connections of poll pages
type Hub struct {
	clients  map[*websocket.Conn]bool
	lock     sync.Mutex
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// Pages are served by this process; same-origin check is the default
			ReadBufferSize:  256,
			WriteBufferSize: 256,
		},
	}
}

// Handler upgrades the request and keeps the connection until the client leaves
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.lock.Lock()
	h.clients[conn] = true
	h.lock.Unlock()

	go func() {
		defer h.remove(conn)

		// Clients never send anything; reading detects the close
		for {
			if _, _, err := conn.NextReader(); err != nil {
				break
			}
		}
	}()
}

// Broadcast sends msg to every client, dropping the ones that fail
func (h *Hub) Broadcast(msg []byte) {
	h.lock.Lock()
	defer h.lock.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Refresh tells every client to reload the poll
func (h *Hub) Refresh() {
	h.Broadcast([]byte(RefreshMessage))
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.lock.Lock()
	delete(h.clients, conn)
	h.lock.Unlock()
	conn.Close()
}
