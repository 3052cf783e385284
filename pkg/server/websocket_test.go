package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vadmin/pkg/schema"
)

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/admin/_ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	return conn
}

func TestWebsocketRefreshBroadcast(t *testing.T) {
	var fetches atomic.Int64
	provider := schema.NewProvider(func(ctx context.Context) (schema.Schema, error) {
		fetches.Add(1)
		return schema.Schema{}, nil
	}, schema.WithLogger(quietLogger()))

	s := newTestServer(t, Options{Panel: barbershopPanel(nil), Schema: provider})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	requester := dialWS(t, ts)
	defer requester.Close()
	listener := dialWS(t, ts)
	defer listener.Close()

	if err := requester.WriteJSON(wsMessage{Type: "refresh-schema"}); err != nil {
		t.Fatal(err)
	}

	// Every connected client hears the update, including the requester.
	for _, conn := range []*websocket.Conn{requester, listener} {
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if msg.Type != "schema-updated" {
			t.Errorf("Message type = %q", msg.Type)
		}
	}

	if fetches.Load() == 0 {
		t.Error("Refresh request did not hit the provider")
	}
}

func TestWebsocketIgnoresUnknownMessages(t *testing.T) {
	s := newTestServer(t, Options{Panel: barbershopPanel(nil)})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	if err := conn.WriteJSON(wsMessage{Type: "bogus"}); err != nil {
		t.Fatal(err)
	}

	// No response, and the connection stays alive for a real request.
	s.NotifySchemaChanged()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var msg wsMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Connection died after unknown message: %v", err)
	}
	if msg.Type != "schema-updated" {
		t.Errorf("Message type = %q", msg.Type)
	}
}
