// Package notify pushes a small JSON message to connected websocket
// clients whenever the snapshot registry publishes a new generation, so a
// UI can refresh without polling.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type generationMessage struct {
	Generation uint64 `json:"generation"`
}

// Hub tracks connected websocket clients and broadcasts generation
// updates to all of them.
type Hub struct {
	log *zap.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an empty Hub.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket connection and registers
// it for broadcasts. The connection is read from (and discarded) only to
// detect client disconnects; clients never send payloads this hub acts on.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go h.drain(conn)
}

// drain blocks reading from conn until it errors or closes, then
// unregisters it. Running one goroutine per connection keeps reads off the
// broadcast path, which only writes.
func (h *Hub) drain(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends generation to every connected client, dropping any
// client whose write fails.
func (h *Hub) Broadcast(generation uint64) {
	payload, err := json.Marshal(generationMessage{Generation: generation})
	if err != nil {
		h.log.Error("marshal generation message", zap.Error(err))
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.remove(conn)
		}
	}
}

// ClientCount reports the number of currently connected clients, for
// diagnostics.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
