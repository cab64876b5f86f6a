package handlers

import (
	"log"
	"net/http"

	"course-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSHandler serves the live activity feed.
type WSHandler struct {
	mgr *ws.Manager
}

func NewWSHandler(mgr *ws.Manager) *WSHandler {
	return &WSHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleActivityWS upgrades to websocket and streams catalog events to the
// client until it disconnects.
// GET /ws
func (h *WSHandler) HandleActivityWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := uuid.New().String()
	h.mgr.Register(clientID, conn)
	log.Printf("activity subscriber connected: %s", clientID)

	defer func() {
		h.mgr.Unregister(clientID)
		log.Printf("activity subscriber disconnected: %s", clientID)
	}()

	// The feed is push-only; keep reading to notice close frames and drain
	// anything the client sends.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error from subscriber %s: %v", clientID, err)
			}
			return
		}
	}
}
