package realtime

import (
	"encoding/json"
	"log/slog"
)

// Message is the frame shape pushed to subscribers. The channel carries only
// outbound events: "panic" and "location-update".
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub maintains the set of connected clients and broadcasts events to them.
// Delivery is at-most-once and best-effort: clients whose send buffer is full
// are dropped.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *slog.Logger
}

// NewHub creates a hub. Run must be started on its own goroutine.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run owns the client registry. All registry mutation happens on this
// goroutine, so no locking is needed.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("realtime client connected", "client", client.id, "total", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("realtime client disconnected", "client", client.id, "total", len(h.clients))
			}
		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					delete(h.clients, client)
					close(client.send)
					h.logger.Info("realtime client dropped, send buffer full", "client", client.id)
				}
			}
		}
	}
}

// Broadcast fans a single event out to every connected subscriber
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.logger.Error("failed to marshal broadcast payload", "event", event, "err", err)
		return
	}
	h.broadcast <- payload
}
