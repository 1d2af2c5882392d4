package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

// ServerMessage is the envelope sent to spectators.
type ServerMessage struct {
	Type         string           `json:"type"`
	ConnectionID string           `json:"connection_id,omitempty"`
	Analysis     *domain.Analysis `json:"analysis,omitempty"`
}

// ConnectionManager tracks spectator sockets thread-safely
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// conn.WriteJSON is not safe for concurrent use, so each socket has its own lock
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // protects the maps
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.connections[id] = conn
	cm.writeMu[id] = &sync.Mutex{}
}

func (cm *ConnectionManager) RemoveConnection(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[id]; exists {
		conn.Close()
		delete(cm.connections, id)
		delete(cm.writeMu, id)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage writes a JSON message to one spectator
func (cm *ConnectionManager) SendMessage(id string, message ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[id]
	mu, muExists := cm.writeMu[id]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // already gone
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(message)
}

// Broadcast pushes an analysis to every spectator. A failed write drops
// that spectator.
func (cm *ConnectionManager) Broadcast(a *domain.Analysis) {
	msg := ServerMessage{Type: "analysis", Analysis: a}

	cm.mu.RLock()
	ids := make([]string, 0, len(cm.connections))
	for id := range cm.connections {
		ids = append(ids, id)
	}
	cm.mu.RUnlock()

	for _, id := range ids {
		// one slow spectator must not hold up the others
		go func(id string) {
			if err := cm.SendMessage(id, msg); err != nil {
				log.Printf("[WS] Dropping spectator %s: %v", id, err)
				cm.RemoveConnection(id)
			}
		}(id)
	}
}

// CloseAll disconnects every spectator, used on shutdown
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for id, conn := range cm.connections {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(cm.connections, id)
		delete(cm.writeMu, id)
	}
}
