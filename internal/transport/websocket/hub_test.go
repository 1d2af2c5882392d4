package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

func TestWatchReceivesBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cm := NewConnectionManager()
	router := gin.New()
	router.GET("/ws/watch", NewHandler(cm).HandleWatch)

	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/watch"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello ServerMessage
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	if hello.Type != "connected" || hello.ConnectionID == "" {
		t.Fatalf("unexpected greeting %+v", hello)
	}
	if cm.Count() != 1 {
		t.Fatalf("registered spectators = %d", cm.Count())
	}

	col := 3
	cm.Broadcast(&domain.Analysis{ID: "a-1", Kind: domain.KindMove, Column: &col})

	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if msg.Type != "analysis" || msg.Analysis == nil || msg.Analysis.ID != "a-1" || *msg.Analysis.Column != 3 {
		t.Fatalf("unexpected broadcast %+v", msg)
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for cm.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("spectator was not removed after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
