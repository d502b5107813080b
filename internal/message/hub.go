package message

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

// trySend queues data unless the client is already shut down or its buffer is
// full. The mutex makes sends and shutdown mutually exclusive so a reconnect
// can never close the channel out from under an in-flight delivery.
func (c *client) trySend(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *client) shutdown() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
	c.conn.Close()
}

// Hub tracks one websocket connection per user and pushes new messages to
// recipients that are online. Offline recipients are handled by the mail
// notifier listening on the event bus.
type Hub struct {
	clients map[string]*client
	logger  *slog.Logger
	mu      sync.RWMutex
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		logger:  logger,
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	old, hadOld := h.clients[c.userID]
	h.clients[c.userID] = c
	h.mu.Unlock()

	if hadOld {
		old.shutdown()
	}

	h.logger.Info("websocket client connected", "user_id", c.userID)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if current, ok := h.clients[c.userID]; ok && current == c {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()
	c.shutdown()

	h.logger.Info("websocket client disconnected", "user_id", c.userID)
}

// Deliver pushes the payload to the recipient's connection if one is live.
// The returned flag feeds the Delivered field on the sent event.
func (h *Hub) Deliver(recipientID string, payload interface{}) bool {
	h.mu.RLock()
	c, ok := h.clients[recipientID]
	h.mu.RUnlock()

	if !ok {
		return false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode websocket payload", "error", err)
		return false
	}

	if !c.trySend(data) {
		// Slow or already replaced consumer, drop the connection rather
		// than block the sender.
		h.unregister(c)
		return false
	}
	return true
}

func (c *client) writePump(h *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The socket is push-only; inbound frames are drained for ping/pong and
	// close handling.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
