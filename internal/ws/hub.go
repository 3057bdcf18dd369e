// Package ws carries game events over websocket connections.
package ws

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/otychat/server/internal/game"
)

const sendBuffer = 64

type client struct {
	id   game.ConnID
	conn *websocket.Conn
	send chan []byte
	role game.Role
}

// Hub tracks open connections and fans encoded events out to them. It
// implements game.Broadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[game.ConnID]*client
	closing bool

	// open counts registered clients; unregister runs after the reader has
	// handed its last action to the coordinator.
	open sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{clients: make(map[game.ConnID]*client)}
}

// register adds c unless the hub is shutting down.
func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.clients[c.id] = c
	h.open.Add(1)
	return true
}

func (h *Hub) isClosing() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closing
}

// unregister removes the client and closes its send channel, which stops
// the writer.
func (h *Hub) unregister(id game.ConnID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(c.send)
		h.open.Done()
	}
}

// CloseAll refuses new connections, closes the open ones and waits until
// every reader has disconnected from the game or ctx ends.
func (h *Hub) CloseAll(ctx context.Context) error {
	h.mu.Lock()
	h.closing = true
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for _, c := range h.clients {
		if c.conn != nil {
			conns = append(conns, c.conn)
		}
	}
	h.mu.Unlock()

	log.Printf("[WS] Closing %d connections", len(conns))
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, conn := range conns {
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		conn.Close()
	}

	done := make(chan struct{})
	go func() {
		h.open.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Count returns the number of open connections of any role.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) SetRole(conn game.ConnID, role game.Role) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		c.role = role
	}
}

func (h *Hub) ToAll(ev game.Event) {
	h.fanout(ev, func(*client) bool { return true })
}

func (h *Hub) ToRole(role game.Role, ev game.Event) {
	h.fanout(ev, func(c *client) bool { return c.role == role })
}

func (h *Hub) ToConn(conn game.ConnID, ev game.Event) {
	h.fanout(ev, func(c *client) bool { return c.id == conn })
}

func (h *Hub) fanout(ev game.Event, match func(*client) bool) {
	data, err := game.Encode(ev)
	if err != nil {
		log.Printf("[WS] Failed to encode %s: %v", ev.EventType(), err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !match(c) {
			continue
		}
		select {
		case c.send <- data:
		default:
			log.Printf("[WS] Dropped %s for slow connection %s", ev.EventType(), c.id)
		}
	}
}
