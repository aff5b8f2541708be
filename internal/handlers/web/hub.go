package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/drinkwheel/internal/common/uuid"
	"github.com/KirkDiggler/drinkwheel/internal/models"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	sendBuffer   = 256
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 54 * time.Second
)

// Message is the envelope of everything written to a websocket client
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MessageTypeState carries a full state snapshot, sent once on connect
const MessageTypeState = "state"

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans sequencer events out to every connected browser. It implements
// sequencer.Presenter; a client whose buffer is full is disconnected rather
// than slowing the game down.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	uuid     uuid.UUID
	logger   *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger, ids uuid.UUID) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = &uuid.DefaultUUID{}
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		uuid:   ids,
		logger: logger,
	}
}

// Present broadcasts event to every client without blocking
func (h *Hub) Present(event *models.Event) {
	data, err := encode(string(event.Type), event)
	if err != nil {
		h.logger.Error("failed to marshal event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow websocket client", zap.String("client", c.id))
		h.unregister(c)
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		close(c.send)
	}
}

// serve upgrades the request and registers the connection. first, if not nil,
// is queued before any broadcast.
func (h *Hub) serve(w http.ResponseWriter, r *http.Request, first []byte) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		id:   h.uuid.NewUUID(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if first != nil {
		c.send <- first
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("websocket client connected", zap.String("client", c.id), zap.Int("clients", total))

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		h.logger.Info("websocket client disconnected", zap.String("client", c.id), zap.Int("clients", total))
	}
}

// readPump only watches for the connection closing; the page sends commands over HTTP
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Debug("websocket read error", zap.String("client", c.id), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

func encode(msgType string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Data: data})
}
