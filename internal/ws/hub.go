package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Event is one change notification: a row in Table changed. Consumers are
// expected to refetch the affected list; the full refetch is idempotent, so
// event ordering does not matter.
type Event struct {
	Type    string `json:"type"`
	Table   string `json:"table"`
	Action  string `json:"action"` // insert, update, delete
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	At      string `json:"at"`
}

// Client is one connected websocket subscriber. An empty Tables set means
// the client receives events from every table.
type Client struct {
	Conn   *websocket.Conn
	Tables map[string]bool
}

type Hub struct {
	Register   chan *Client
	Unregister chan *websocket.Conn
	broadcast  chan Event
	clients    map[*websocket.Conn]*Client
	mutex      sync.Mutex
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *websocket.Conn),
		broadcast:  make(chan Event, 64),
		clients:    make(map[*websocket.Conn]*Client),
		log:        log,
	}
}

// Publish queues a change event for every subscriber of the table. It never
// blocks the calling request; when the hub is saturated the event is
// dropped, which is safe because consumers refetch full state anyway.
func (h *Hub) Publish(table, action, id, message string) {
	ev := Event{
		Type:    "change",
		Table:   table,
		Action:  action,
		ID:      id,
		Message: message,
		At:      time.Now().Format(time.RFC3339),
	}
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("change event dropped, hub saturated", zap.String("table", table))
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mutex.Lock()
			h.clients[client.Conn] = client
			h.mutex.Unlock()
			h.log.Debug("ws client connected", zap.Int("tables", len(client.Tables)))

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case ev := <-h.broadcast:
			msg, _ := json.Marshal(ev)
			h.mutex.Lock()
			for conn, client := range h.clients {
				if len(client.Tables) > 0 && !client.Tables[ev.Table] {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
