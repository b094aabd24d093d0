package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 64
)

// Authorizer decides whether an actor may follow an inquiry.
type Authorizer interface {
	Authorize(ctx context.Context, actor Actor, inquiryID int64) (*Inquiry, error)
}

// connection represents a single WebSocket client
type connection struct {
	actor     Actor
	conn      *websocket.Conn
	send      chan []byte
	inquiries map[int64]bool // guarded by Hub.mu
}

// Hub fans inquiry events out to subscribed sockets. A user may hold several
// connections (one per tab).
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
	auth        Authorizer
	log         *zap.Logger
}

func NewHub(auth Authorizer, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		connections: make(map[*connection]struct{}),
		auth:        auth,
		log:         log,
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

// Publish implements Publisher.
func (h *Hub) Publish(inquiryID int64, event *ServerEvent) {
	h.broadcast(inquiryID, event, nil)
}

// broadcast sends event to every subscriber of inquiryID except skip.
func (h *Hub) broadcast(inquiryID int64, event *ServerEvent, skip *connection) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("marshal ws event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if c == skip || !c.inquiries[inquiryID] {
			continue
		}
		select {
		case c.send <- data:
		default:
			// client too slow, drop the event
		}
	}
}

// Connections returns the number of open sockets.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Shutdown closes every socket; their pumps exit on the resulting errors.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		_ = c.conn.Close()
	}
}

// ServeWS registers a new connection and blocks until it closes.
func (h *Hub) ServeWS(conn *websocket.Conn, actor Actor) {
	c := &connection{
		actor:     actor,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		inquiries: make(map[int64]bool),
	}
	h.register(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writePump(c)
	}()
	h.readPump(c)
	<-done
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read failed", zap.Int64("user_id", c.actor.UserID), zap.Error(err))
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(raw, &frame); err != nil || frame.InquiryID <= 0 {
			h.reply(c, NewErrorEvent(0, "BAD_FRAME", "expected {type, inquiry_id}"))
			continue
		}

		switch frame.Type {
		case "subscribe":
			h.subscribe(c, frame.InquiryID)
		case "unsubscribe":
			h.mu.Lock()
			delete(c.inquiries, frame.InquiryID)
			h.mu.Unlock()
		case "typing":
			h.mu.RLock()
			subscribed := c.inquiries[frame.InquiryID]
			h.mu.RUnlock()
			if subscribed {
				h.broadcast(frame.InquiryID, NewTypingEvent(frame.InquiryID, c.actor), c)
			}
		default:
			h.reply(c, NewErrorEvent(frame.InquiryID, "UNKNOWN_TYPE", "unknown frame type"))
		}
	}
}

func (h *Hub) subscribe(c *connection, inquiryID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()

	if _, err := h.auth.Authorize(ctx, c.actor, inquiryID); err != nil {
		switch {
		case errors.Is(err, ErrInquiryNotFound):
			h.reply(c, NewErrorEvent(inquiryID, "NOT_FOUND", "inquiry not found"))
		case errors.Is(err, ErrForbidden):
			h.reply(c, NewErrorEvent(inquiryID, "FORBIDDEN", "not a participant of this inquiry"))
		default:
			h.log.Error("authorize subscription", zap.Int64("inquiry_id", inquiryID), zap.Error(err))
			h.reply(c, NewErrorEvent(inquiryID, "INTERNAL_ERROR", "subscription failed"))
		}
		return
	}

	h.mu.Lock()
	c.inquiries[inquiryID] = true
	h.mu.Unlock()
	h.reply(c, &ServerEvent{Type: EventSubscribed, InquiryID: inquiryID})
}

// reply queues an event for one connection. Only called from readPump, so
// c.send is still open.
func (h *Hub) reply(c *connection, event *ServerEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
