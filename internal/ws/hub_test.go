package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d, at %d", want, hub.ClientCount())
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	hub.Unregister(client)
	waitForClientCount(t, hub, 0)

	if _, ok := <-client.send; ok {
		t.Fatalf("send channel should be closed after unregister")
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	a := NewClient(hub, nil)
	b := NewClient(hub, nil)
	hub.Register(a)
	hub.Register(b)
	waitForClientCount(t, hub, 2)

	hub.Broadcast([]byte("hello"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != "hello" {
				t.Fatalf("message mismatch: %q", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("client never received broadcast")
		}
	}
}

func TestHubSurvivesMassSlowClientEviction(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	// More slow clients than the unregister buffer holds. Overflowing all
	// of their send buffers in one burst must evict them without stalling
	// the hub loop.
	const slowClients = 200
	for i := 0; i < slowClients; i++ {
		hub.Register(NewClient(hub, nil))
	}
	waitForClientCount(t, hub, slowClients)

	for i := 0; i < 65; i++ {
		hub.Broadcast([]byte("burst"))
	}
	waitForClientCount(t, hub, 0)

	fresh := NewClient(hub, nil)
	hub.Register(fresh)
	waitForClientCount(t, hub, 1)

	hub.Broadcast([]byte("after"))
	select {
	case msg := <-fresh.send:
		if string(msg) != "after" {
			t.Fatalf("message mismatch: %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("hub stopped delivering after eviction burst")
	}
}

func TestNotifierEventShape(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	id := uuid.New()
	NewNotifier(hub).NotifyNewMatch(id, "Go Engineer", "Acme", 0.84)

	select {
	case msg := <-client.send:
		var evt NewMatchEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if evt.Type != "new_match" {
			t.Fatalf("unexpected event type %q", evt.Type)
		}
		if evt.JobID != id || evt.Title != "Go Engineer" || evt.MatchScore != 0.84 {
			t.Fatalf("event payload mismatch: %+v", evt)
		}
		if evt.Timestamp == "" {
			t.Fatalf("expected timestamp set")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never delivered")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.NotifyNewMatch(uuid.New(), "x", "y", 1.0)
	NewNotifier(nil).NotifyNewMatch(uuid.New(), "x", "y", 1.0)
}
