package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// ChangeEvent mirrors a row change on one of the watched tables. Clients
// react by re-fetching the affected view, not by patching state.
type ChangeEvent struct {
	Table string `json:"table"`
	Event string `json:"event"` // INSERT | UPDATE | DELETE
	New   any    `json:"new,omitempty"`
	Old   any    `json:"old,omitempty"`
}

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

type presenceEvent struct {
	Table string `json:"table"` // always "presence"
	Count int    `json:"count"`
}

// EventHub fans table changes out to every connected client and keeps the
// connected-viewer count, which it pushes on every join and leave.
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan ChangeEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ChangeEvent),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *EventHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.sendPresenceLocked()
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				h.sendPresenceLocked()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Errorf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish is safe on a nil hub so writes can run without realtime wired
// up (tests, one-off scripts).
func (h *EventHub) Publish(ev ChangeEvent) {
	if h == nil {
		return
	}
	h.broadcast <- ev
}

func (h *EventHub) sendPresenceLocked() {
	ev := presenceEvent{Table: "presence", Count: len(h.clients)}
	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/events
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	go h.listen(conn)
}

// listen drains the connection so pings and close frames are handled; the
// event channel is one-way, clients never send.
func (h *EventHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
