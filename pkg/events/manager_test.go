package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWSServer(t *testing.T, m *ConnectionManager) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		m.HandleConnection(r.Context(), conn, r.URL.Query().Get("user"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialWS(t *testing.T, srv *httptest.Server, user string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?user=" + user
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readEnvelope reads frames until one with the wanted type arrives,
// skipping control frames like pings.
func readEnvelope(t *testing.T, conn *websocket.Conn, wantType string) Envelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var env Envelope
		require.NoError(t, json.Unmarshal(data, &env))
		if env.Type == wantType {
			return env
		}
	}
}

func TestConnectionManagerEstablishedFrame(t *testing.T) {
	m := NewConnectionManager(5*time.Second, time.Minute)
	srv := newTestWSServer(t, m)

	conn := dialWS(t, srv, "alice")
	env := readEnvelope(t, conn, EventTypeEstablished)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["connection_id"])
}

func TestConnectionManagerBroadcast(t *testing.T) {
	m := NewConnectionManager(5*time.Second, time.Minute)
	srv := newTestWSServer(t, m)

	alice := dialWS(t, srv, "alice")
	bob := dialWS(t, srv, "bob")
	require.Eventually(t, func() bool {
		return m.ActiveConnections() == 2
	}, 2*time.Second, 10*time.Millisecond)

	failed := m.Broadcast([]byte(`{"type":"message.new","data":{"id":1}}`))
	assert.Equal(t, 0, failed)

	for _, conn := range []*websocket.Conn{alice, bob} {
		env := readEnvelope(t, conn, EventTypeMessageNew)
		assert.Equal(t, EventTypeMessageNew, env.Type)
	}
}

func TestConnectionManagerSendToUser(t *testing.T) {
	m := NewConnectionManager(5*time.Second, time.Minute)
	srv := newTestWSServer(t, m)

	alice := dialWS(t, srv, "alice")
	bob := dialWS(t, srv, "bob")
	require.Eventually(t, func() bool {
		return m.ActiveUsers() == 2
	}, 2*time.Second, 10*time.Millisecond)

	failed := m.SendToUser("alice", []byte(`{"type":"user.only","data":{}}`))
	assert.Equal(t, 0, failed)
	failed = m.Broadcast([]byte(`{"type":"everyone","data":{}}`))
	assert.Equal(t, 0, failed)

	env := readEnvelope(t, alice, "user.only")
	assert.Equal(t, "user.only", env.Type)

	// Frames per connection are ordered, so if bob had received the
	// user frame it would arrive before the broadcast.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		_, data, err := bob.Read(ctx)
		require.NoError(t, err)
		var got Envelope
		require.NoError(t, json.Unmarshal(data, &got))
		require.NotEqual(t, "user.only", got.Type, "frame meant for alice reached bob")
		if got.Type == "everyone" {
			break
		}
	}
}

func TestConnectionManagerAcksClientText(t *testing.T) {
	m := NewConnectionManager(5*time.Second, time.Minute)
	srv := newTestWSServer(t, m)

	conn := dialWS(t, srv, "alice")
	readEnvelope(t, conn, EventTypeEstablished)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("hello there")))

	env := readEnvelope(t, conn, EventTypeAck)
	assert.Equal(t, "hello there", env.Data)
}

func TestConnectionManagerIdlePing(t *testing.T) {
	m := NewConnectionManager(5*time.Second, 100*time.Millisecond)
	srv := newTestWSServer(t, m)

	conn := dialWS(t, srv, "alice")
	env := readEnvelope(t, conn, EventTypePing)
	assert.Equal(t, EventTypePing, env.Type)
}

func TestConnectionManagerDetachOnDisconnect(t *testing.T) {
	m := NewConnectionManager(5*time.Second, time.Minute)
	srv := newTestWSServer(t, m)

	conn := dialWS(t, srv, "alice")
	readEnvelope(t, conn, EventTypeEstablished)
	require.Equal(t, 1, m.ActiveConnections())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool {
		return m.ActiveConnections() == 0 && m.ActiveUsers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
