// internal/websocket/hub.go

// Package websocket pushes events to connected CMS dashboards, currently
// just new-inquiry notifications so staff see contact-form submissions
// without refreshing.
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"autosalon-service/internal/domain/inquiry"

	"go.uber.org/zap"
)

// Event is the wire format for dashboard pushes.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventConnected   = "connected"
	EventNewInquiry  = "inquiry.new"
	EventUnreadCount = "inquiry.unread_count"
)

type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("dashboard client connected",
				zap.Int64("admin_id", client.adminID),
				zap.Int("total", total),
			)
			client.SendEvent(Event{Type: EventConnected, Timestamp: time.Now()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				h.logger.Info("dashboard client disconnected",
					zap.Int64("admin_id", client.adminID),
					zap.Int("total", len(h.clients)),
				)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			// Slow clients are dropped inline; routing them back through
			// the unregister channel would block the only receiver.
			h.mu.Lock()
			for client := range h.clients {
				if !client.Send(msg) {
					delete(h.clients, client)
					client.Close()
					h.logger.Warn("dropping slow dashboard client",
						zap.Int64("admin_id", client.adminID),
					)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastNewInquiry pushes a fresh contact-form submission, plus the new
// unread count, to every connected dashboard.
func (h *Hub) BroadcastNewInquiry(inq *inquiry.Inquiry, unread int) {
	h.broadcastEvent(Event{Type: EventNewInquiry, Data: inq, Timestamp: time.Now()})
	h.broadcastEvent(Event{
		Type:      EventUnreadCount,
		Data:      map[string]int{"unread": unread},
		Timestamp: time.Now(),
	})
}

func (h *Hub) broadcastEvent(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("failed to marshal websocket event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("websocket broadcast buffer full, dropping event",
			zap.String("type", ev.Type))
	}
}

// TotalClients reports how many dashboards are connected.
func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
