package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsMessage is the wire format on the refresh channel.
type wsMessage struct {
	Type string `json:"type"`
}

// refreshHub pushes schema-change notifications to connected admin clients
// and accepts refresh requests from them.
type refreshHub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newRefreshHub(logger *slog.Logger) *refreshHub {
	return &refreshHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// handleWS upgrades the connection and serves the refresh channel.
//
// Protocol: the client sends {"type":"refresh-schema"} to force a schema
// refetch; the server broadcasts {"type":"schema-updated"} to every client
// when the schema changes.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	s.hub.add(conn)
	defer s.hub.remove(conn)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != "refresh-schema" {
			continue
		}

		if s.schema == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := s.schema.Refresh(ctx)
		cancel()
		if err != nil {
			s.logger.Warn("schema refresh failed", "error", err)
			continue
		}
		s.NotifySchemaChanged()
	}
}

// NotifySchemaChanged broadcasts a schema-updated message to all clients.
// Call it after out-of-band schema changes (e.g. a config reload).
func (s *Server) NotifySchemaChanged() {
	s.hub.broadcast(wsMessage{Type: "schema-updated"})
}

func (h *refreshHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
}

func (h *refreshHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *refreshHub) broadcast(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("websocket write failed, dropping client", "error", err)
			h.remove(conn)
		}
	}
}
