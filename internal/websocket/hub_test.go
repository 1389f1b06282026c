// internal/websocket/hub_test.go
package websocket

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func fillSendBuffer(c *Client) {
	for {
		select {
		case c.send <- []byte("backlog"):
		default:
			return
		}
	}
}

func TestBroadcast_DropsSlowClientWithoutBlockingHub(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	slow := NewClient(hub, nil, 1)
	hub.register <- slow
	fillSendBuffer(slow)

	hub.broadcastEvent(Event{Type: EventUnreadCount, Timestamp: time.Now()})

	// The hub must keep serving registrations after broadcasting to a
	// client whose buffer is full.
	next := NewClient(hub, nil, 2)
	select {
	case hub.register <- next:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting registrations after broadcasting to a full client buffer")
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.TotalClients() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("TotalClients() = %d, expected the slow client to be dropped", hub.TotalClients())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestClientSend_ReportsFullBuffer(t *testing.T) {
	c := NewClient(NewHub(zap.NewNop()), nil, 7)

	if !c.Send([]byte("first")) {
		t.Fatal("Send into an empty buffer = false, expected true")
	}

	fillSendBuffer(c)
	if c.Send([]byte("overflow")) {
		t.Error("Send into a full buffer = true, expected false")
	}
}
