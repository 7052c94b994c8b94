package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/services"
)

// StreamHandler upgrades connections onto the live score hub.
type StreamHandler struct {
	hub      *services.ScoreHub
	logger   *logrus.Logger
	upgrader websocket.Upgrader
}

func NewStreamHandler(hub *services.ScoreHub, logger *logrus.Logger) *StreamHandler {
	return &StreamHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleScores upgrades the request and keeps the connection
// registered until the peer goes away. Incoming frames are drained and
// ignored; the stream is one-way.
func (h *StreamHandler) HandleScores(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)

	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
