package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Event is a data-change notification pushed to every connected back-office
// client so open screens can refresh and surface a toast.
type Event struct {
	Kind     string `json:"kind"` // e.g. booking.created, payment.reverted
	Message  string `json:"message"`
	Severity string `json:"severity"` // success | warning | info | error
	Ref      string `json:"ref,omitempty"`
}

type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan Event, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.ID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.ID]; ok && conn == client.Conn {
				delete(clients, client.ID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for id, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending event to client %s: %v", id, err)
					conn.Close()
					dead = append(dead, id)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, id := range dead {
					delete(clients, id)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Notify queues an event without blocking the mutation that triggered it;
// when no hub is draining the channel the event is dropped.
func Notify(kind, message, severity, ref string) {
	select {
	case Broadcast <- Event{Kind: kind, Message: message, Severity: severity, Ref: ref}:
	default:
	}
}

// Handler keeps a client registered for the lifetime of its connection.
// Inbound frames are ignored; the feed is one-way.
func Handler(c *websocket.Conn) {
	client := &Client{ID: uuid.New(), Conn: c}
	Register <- client
	defer func() {
		Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
