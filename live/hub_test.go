// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to WebSocket: %v", err)
	}
	return ws
}

// waitForClients polls until the hub reports n clients or the deadline passes
func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.Count() == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, have %d", n, h.Count())
}

func TestHub_ClientReceivesRefresh(t *testing.T) {
	h := NewHub()
	server := httptest.NewServer(http.HandlerFunc(h.Handler))
	defer server.Close()

	ws1 := dial(t, server)
	defer ws1.Close()
	ws2 := dial(t, server)
	defer ws2.Close()
	waitForClients(t, h, 2)

	h.Refresh()

	for i, ws := range []*websocket.Conn{ws1, ws2} {
		ws.SetReadDeadline(time.Now().Add(time.Second))
		_, msg, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("client %d: failed to read message: %v", i, err)
		}
		if string(msg) != RefreshMessage {
			t.Errorf("client %d: expected %q, got %q", i, RefreshMessage, msg)
		}
	}
}

func TestHub_RemovesDisconnectedClients(t *testing.T) {
	h := NewHub()
	server := httptest.NewServer(http.HandlerFunc(h.Handler))
	defer server.Close()

	ws := dial(t, server)
	waitForClients(t, h, 1)

	_ = ws.Close()
	waitForClients(t, h, 0)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Refresh panicked after client disconnect: %v", r)
		}
	}()
	h.Refresh()
}

func TestHub_BroadcastDropsDeadConnection(t *testing.T) {
	h := NewHub()
	server := httptest.NewServer(http.HandlerFunc(h.Handler))
	defer server.Close()

	ws := dial(t, server)
	waitForClients(t, h, 1)
	_ = ws.Close()
	waitForClients(t, h, 0)

	// Re-register the closed client-side connection; writing to it must fail
	h.lock.Lock()
	h.clients[ws] = true
	h.lock.Unlock()

	h.Refresh()

	if h.Count() != 0 {
		t.Errorf("expected dead connection to be removed, have %d clients", h.Count())
	}
}

func TestHub_RejectsPlainHTTP(t *testing.T) {
	h := NewHub()

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	w := httptest.NewRecorder()

	h.Handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected HTTP 400 on upgrade failure, got %d", w.Code)
	}
	if h.Count() != 0 {
		t.Error("failed upgrade should not register a client")
	}
}
