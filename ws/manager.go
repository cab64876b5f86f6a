package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of active activity-feed subscriber connections.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // clientID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]*websocket.Conn)}
}

// Register registers a subscriber connection, replacing any existing one.
func (m *Manager) Register(clientID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[clientID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.connections[clientID] = conn
}

// Unregister removes a subscriber connection.
func (m *Manager) Unregister(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[clientID]; ok {
		_ = conn.Close()
		delete(m.connections, clientID)
	}
}

// Broadcast sends a text message to every subscriber. Connections that fail
// to accept the write are dropped.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.connections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(m.connections, id)
		}
	}
}

// List returns a copy of current subscriber IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
