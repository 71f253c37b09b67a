package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testClient(hub *Hub, id string, buffer int) *Client {
	return &Client{id: id, hub: hub, send: make(chan []byte, buffer)}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case payload := <-c.send:
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := testHub()
	go hub.Run()

	c1 := testClient(hub, "c1", 16)
	c2 := testClient(hub, "c2", 16)
	hub.register <- c1
	hub.register <- c2

	hub.Broadcast("panic", map[string]interface{}{"lat": 1.0})

	for _, c := range []*Client{c1, c2} {
		var msg Message
		assert.NoError(t, json.Unmarshal(receive(t, c), &msg))
		assert.Equal(t, "panic", msg.Event)
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := testHub()
	go hub.Run()

	c := testClient(hub, "c1", 16)
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := testHub()
	go hub.Run()

	// Pre-fill the send buffer so the next broadcast cannot be queued
	slow := testClient(hub, "slow", 1)
	slow.send <- []byte("stale")
	hub.register <- slow

	hub.Broadcast("location-update", "b")

	// The stale frame is still buffered, then the channel must be closed
	deadline := time.After(time.Second)
	received := 0
	for {
		select {
		case _, ok := <-slow.send:
			if !ok {
				assert.Equal(t, 1, received)
				return
			}
			received++
		case <-deadline:
			t.Fatal("slow client was never dropped")
		}
	}
}
