package ws

import (
	"context"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/otychat/server/internal/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20
	actionTimeout  = 10 * time.Second
)

// Coordinator is the part of game.Coordinator the transport drives.
type Coordinator interface {
	Handle(ctx context.Context, conn game.ConnID, a game.Action) error
	Disconnect(conn game.ConnID)
}

// Handler upgrades HTTP requests to websocket connections and pumps
// actions into the coordinator.
type Handler struct {
	hub      *Hub
	game     Coordinator
	upgrader websocket.Upgrader
}

// NewHandler accepts browsers from allowedOrigins. An empty list, or one
// containing "*", accepts any origin.
func NewHandler(hub *Hub, coordinator Coordinator, allowedOrigins []string) *Handler {
	return &Handler{
		hub:  hub,
		game: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.hub.isClosing() {
		http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed from %s: %v", r.RemoteAddr, err)
		return
	}

	c := &client{
		id:   game.ConnID(uuid.NewString()),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if !h.hub.register(c) {
		conn.Close()
		return
	}
	log.Printf("[WS] Connection %s opened from %s", c.id, r.RemoteAddr)

	go c.writer()
	h.reader(c)
}

func (h *Handler) reader(c *client) {
	defer func() {
		h.game.Disconnect(c.id)
		h.hub.unregister(c.id)
		c.conn.Close()
		log.Printf("[WS] Connection %s closed", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error on %s: %v", c.id, err)
			}
			return
		}

		action, err := game.DecodeAction(msg)
		if err != nil {
			h.hub.ToConn(c.id, game.Rejected{Reason: game.ReasonInvalidInput, Message: err.Error()})
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		if err := h.game.Handle(ctx, c.id, action); err != nil {
			log.Printf("[WS] Action from %s dropped: %v", c.id, err)
		}
		cancel()
	}
}

func (c *client) writer() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
