package preview

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected livereload clients and fans out a single
// "reload" message to all of them after a rebuild.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// Drain until the client goes away; clients never send anything
	// meaningful, the read loop just detects disconnects.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *reloadHub) broadcast() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			h.drop(c)
		}
	}
}
