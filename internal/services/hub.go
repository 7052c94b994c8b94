package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ScoreHub fans live score payloads out to websocket subscribers.
type ScoreHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  *logrus.Logger

	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
}

func NewScoreHub(logger *logrus.Logger) *ScoreHub {
	return &ScoreHub{
		clients:    make(map[*websocket.Conn]bool),
		logger:     logger,
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
	}
}

// Run processes registrations and broadcasts. Call in a goroutine.
func (h *ScoreHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Debugf("Score stream client connected (%d total)", count)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *ScoreHub) Register(conn *websocket.Conn) {
	h.register <- conn
}

func (h *ScoreHub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Broadcast JSON-encodes payload and sends it to every subscriber.
func (h *ScoreHub) Broadcast(payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Errorf("Failed to encode score broadcast: %v", err)
		return
	}
	h.broadcast <- data
}

// ClientCount reports current subscribers.
func (h *ScoreHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
