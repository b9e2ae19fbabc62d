package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/splunk-genie/genie/pkg/metrics"
)

// Connection represents one active WebSocket client.
type Connection struct {
	ID     string
	UserID string
	Conn   *websocket.Conn

	ctx    context.Context
	cancel context.CancelFunc

	// writeMu serializes writes; the websocket library allows only one
	// concurrent writer per connection.
	writeMu sync.Mutex

	// activity is pulsed by the read loop so the ping loop can tell an
	// idle connection from a chatty one.
	activity chan struct{}
}

// ConnectionManager tracks active WebSocket connections keyed by
// connection id and by user, and broadcasts marshaled event payloads
// to them. A payload is marshaled once by the publisher and the same
// bytes are written to every connection.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	users       map[string]map[string]bool

	writeTimeout time.Duration
	idlePing     time.Duration
}

// NewConnectionManager creates a connection manager. writeTimeout
// bounds each WebSocket write; idlePing is how long a connection may
// sit idle before the server sends a ping frame.
func NewConnectionManager(writeTimeout, idlePing time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	if idlePing <= 0 {
		idlePing = 30 * time.Second
	}
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		users:        make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
		idlePing:     idlePing,
	}
}

// HandleConnection registers the connection and services it until the
// client disconnects or the parent context is canceled. Blocks for the
// lifetime of the connection.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, userID string) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:       uuid.New().String(),
		UserID:   userID,
		Conn:     conn,
		ctx:      ctx,
		cancel:   cancel,
		activity: make(chan struct{}, 1),
	}

	m.register(c)
	defer m.unregister(c)

	slog.Info("WebSocket connection established",
		"connection_id", c.ID, "user_id", userID, "active", m.ActiveConnections())

	established, _ := json.Marshal(Envelope{
		Type: EventTypeEstablished,
		Data: map[string]string{"connection_id": c.ID},
	})
	if err := m.send(c, established); err != nil {
		return
	}

	go m.pingLoop(c)
	m.readLoop(c)
}

// readLoop receives client frames until the connection drops. Inbound
// text is acknowledged verbatim; clients do not drive server behavior
// over the socket beyond keeping it alive.
func (m *ConnectionManager) readLoop(c *Connection) {
	for {
		_, data, err := c.Conn.Read(c.ctx)
		if err != nil {
			slog.Debug("WebSocket connection closed",
				"connection_id", c.ID, "user_id", c.UserID, "error", err)
			return
		}

		select {
		case c.activity <- struct{}{}:
		default:
		}

		ack, _ := json.Marshal(Envelope{Type: EventTypeAck, Data: string(data)})
		if err := m.send(c, ack); err != nil {
			return
		}
	}
}

// pingLoop sends a ping envelope whenever the connection has been idle
// for the configured interval.
func (m *ConnectionManager) pingLoop(c *Connection) {
	ping, _ := json.Marshal(Envelope{Type: EventTypePing, Data: struct{}{}})

	timer := time.NewTimer(m.idlePing)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			if err := m.send(c, ping); err != nil {
				return
			}
			timer.Reset(m.idlePing)
		case <-c.activity:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(m.idlePing)
		case <-c.ctx.Done():
			return
		}
	}
}

// Broadcast writes the payload to every active connection. Connections
// whose write fails are detached. Returns the number of failed sends.
func (m *ConnectionManager) Broadcast(payload []byte) int {
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	failed := 0
	for _, c := range conns {
		if err := m.send(c, payload); err != nil {
			failed++
		}
	}
	return failed
}

// SendToUser writes the payload to every connection belonging to the
// user. Returns the number of failed sends.
func (m *ConnectionManager) SendToUser(userID string, payload []byte) int {
	m.mu.RLock()
	ids := make([]string, 0, len(m.users[userID]))
	for id := range m.users[userID] {
		ids = append(ids, id)
	}
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	failed := 0
	for _, c := range conns {
		if err := m.send(c, payload); err != nil {
			failed++
		}
	}
	return failed
}

// ActiveConnections returns the number of registered connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// ActiveUsers returns the number of distinct users with at least one
// registered connection.
func (m *ConnectionManager) ActiveUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// send writes one payload to one connection, detaching it on failure so
// a dead client cannot stall future broadcasts.
func (m *ConnectionManager) send(c *Connection, payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	if err := c.Conn.Write(ctx, websocket.MessageText, payload); err != nil {
		slog.Warn("WebSocket send failed, detaching connection",
			"connection_id", c.ID, "user_id", c.UserID, "error", err)
		m.unregister(c)
		return err
	}
	return nil
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
	if m.users[c.UserID] == nil {
		m.users[c.UserID] = make(map[string]bool)
	}
	m.users[c.UserID][c.ID] = true
	metrics.RecordWSConnect()
}

// unregister is idempotent; it is reached from both the connection
// lifecycle and the send failure path.
func (m *ConnectionManager) unregister(c *Connection) {
	m.mu.Lock()
	_, registered := m.connections[c.ID]
	delete(m.connections, c.ID)
	if userConns, ok := m.users[c.UserID]; ok {
		delete(userConns, c.ID)
		if len(userConns) == 0 {
			delete(m.users, c.UserID)
		}
	}
	m.mu.Unlock()

	if registered {
		metrics.RecordWSDisconnect()
		c.cancel()
		_ = c.Conn.Close(websocket.StatusNormalClosure, "")
		slog.Info("WebSocket connection removed",
			"connection_id", c.ID, "user_id", c.UserID, "active", m.ActiveConnections())
	}
}
