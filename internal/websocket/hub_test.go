package websocket

import (
	"encoding/json"
	"log/slog"
	"testing"
)

func testHub() *Hub {
	return NewHub(slog.Default())
}

func fakeClient(hub *Hub) *Client {
	return &Client{hub: hub, send: make(chan []byte, sendBufferSize)}
}

func TestMemberEvent(t *testing.T) {
	msg := MemberEvent("created", 7)
	if msg.Type != "member_created" || msg.Entity != "member" || msg.Action != "created" || msg.ID != 7 {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestBroadcastFanOut(t *testing.T) {
	hub := testHub()
	a := fakeClient(hub)
	b := fakeClient(hub)
	hub.register(a)
	hub.register(b)

	hub.Broadcast(MemberEvent("updated", 3))

	for name, c := range map[string]*Client{"a": a, "b": b} {
		select {
		case data := <-c.send:
			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				t.Fatalf("client %s: unmarshal: %v", name, err)
			}
			if msg.Type != "member_updated" || msg.ID != 3 {
				t.Errorf("client %s got %+v", name, msg)
			}
		default:
			t.Errorf("client %s received nothing", name)
		}
	}
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := testHub()
	c := fakeClient(hub)
	hub.register(c)
	if hub.ClientCount() != 1 {
		t.Fatalf("count = %d, want 1", hub.ClientCount())
	}

	hub.unregister(c)
	if hub.ClientCount() != 0 {
		t.Errorf("count = %d, want 0", hub.ClientCount())
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed")
	}

	// Unregistering twice must not panic on the closed channel.
	hub.unregister(c)
}

func TestBroadcastSkipsFullClients(t *testing.T) {
	hub := testHub()
	c := &Client{hub: hub, send: make(chan []byte)} // unbuffered, never read
	hub.register(c)

	// Must not block even though nothing drains the channel.
	hub.Broadcast(MemberEvent("deleted", 1))
}
