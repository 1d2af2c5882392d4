package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-analyzer/pkg/uid"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler upgrades spectator connections for the live analysis feed
type Handler struct {
	ConnManager *ConnectionManager
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager) *Handler {
	return &Handler{
		ConnManager: cm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWatch is the gin handler that upgrades the connection
func (h *Handler) HandleWatch(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection keeps one spectator registered until it goes away.
// Spectators only listen; anything they send is discarded.
func (h *Handler) handleConnection(conn *websocket.Conn) {
	id := uid.NewConnectionID()
	h.ConnManager.AddConnection(id, conn)
	defer h.ConnManager.RemoveConnection(id)
	log.Printf("[WS] Spectator %s connected", id)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	if err := h.ConnManager.SendMessage(id, ServerMessage{Type: "connected", ConnectionID: id}); err != nil {
		log.Printf("[WS] Greeting %s failed: %v", id, err)
		return
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Spectator %s disconnected unexpectedly: %v", id, err)
			}
			break
		}
	}
	log.Printf("[WS] Spectator %s left", id)
}
