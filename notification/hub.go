package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/tutolink/tutolink-api/schema"
)

var log = logrus.WithField("prefix", "hub")

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

// Client is one connected websocket listener.
type Client struct {
	ID     uuid.UUID
	UserID string
	Role   string

	conn *websocket.Conn
	send chan Envelope
	hub  *Hub
	once sync.Once
}

// Hub tracks every connected client and implements Notifier by
// writing event envelopes to the matching connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[string][]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string][]*Client),
	}
}

// Register attaches a connection to the hub and starts its write
// pump. The caller owns the read side.
func (h *Hub) Register(conn *websocket.Conn, userID, role string) *Client {
	client := &Client{
		ID:     uuid.New(),
		UserID: userID,
		Role:   role,
		conn:   conn,
		send:   make(chan Envelope, sendBuffer),
		hub:    h,
	}

	h.mu.Lock()
	h.clients[userID] = append(h.clients[userID], client)
	h.mu.Unlock()

	go client.writePump()

	return client
}

// Close detaches the client and closes its connection. Safe to call
// more than once.
func (c *Client) Close() {
	c.once.Do(func() {
		c.hub.remove(c)
		close(c.send)
		_ = c.conn.Close()
	})
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[c.UserID]
	for i, existing := range clients {
		if existing.ID == c.ID {
			h.clients[c.UserID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.clients[c.UserID]) == 0 {
		delete(h.clients, c.UserID)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case env, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
				log.WithField("user", c.UserID).Debug("dropping client: ", err)
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

func (c *Client) deliver(env Envelope) {
	defer func() {
		// The send channel races with Close; a write to the closed
		// channel only means the client is already gone.
		_ = recover()
	}()

	select {
	case c.send <- env:
	default:
		log.WithField("user", c.UserID).Debug("send buffer full, dropping event ", env.Event)
	}
}

func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	all := []*Client{}
	for _, clients := range h.clients {
		all = append(all, clients...)
	}
	return all
}

// NotifyUser pushes an event to every connection of one user.
func (h *Hub) NotifyUser(userID, event string, payload map[string]interface{}) error {
	env := Envelope{Event: event, Payload: payload, Timestamp: time.Now()}

	h.mu.RLock()
	clients := append([]*Client{}, h.clients[userID]...)
	h.mu.RUnlock()

	for _, c := range clients {
		c.deliver(env)
	}
	return nil
}

// NotifyRole broadcasts an event to every connected user of a role.
func (h *Hub) NotifyRole(role, event string, payload map[string]interface{}) error {
	env := Envelope{Event: event, Payload: payload, Timestamp: time.Now()}

	for _, c := range h.snapshot() {
		if c.Role == role {
			c.deliver(env)
		}
	}
	return nil
}

// NotifySession pushes an event to both parties of a session.
func (h *Hub) NotifySession(session *schema.Session, event string, payload map[string]interface{}) error {
	if err := h.NotifyUser(session.RookieID, event, payload); err != nil {
		return err
	}
	if session.TutoID != nil {
		return h.NotifyUser(*session.TutoID, event, payload)
	}
	return nil
}
