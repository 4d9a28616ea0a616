package sse

import (
	"testing"
	"time"

	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "score_changed",
			data:      `{"score":50}`,
			expected:  "event: score_changed\ndata: {\"score\":50}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "grid_changed",
			data:      "line1\nline2",
			expected:  "event: grid_changed\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	hub.BroadcastEvent("score_changed", `{"score":1}`)

	select {
	case msg := <-client.send:
		want := "event: score_changed\ndata: {\"score\":1}\n\n"
		if string(msg) != want {
			t.Errorf("got %q, want %q", string(msg), want)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestHubCloseUnblocksConnectedClients(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()

	client := NewClient(hub)
	hub.Register(client)

	hub.Close()

	// Run closes every client's send channel on shutdown
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	// The serving goroutine unregisters on its way out; with the hub's
	// event loop gone this must still return rather than block
	unregistered := make(chan struct{})
	go func() {
		hub.Unregister(client)
		close(unregistered)
	}()

	select {
	case <-unregistered:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after hub close")
	}
}

func TestHubRegisterAfterCloseReturns(t *testing.T) {
	hub := NewHub("session-1", testutil.NopLogger())
	go hub.Run()
	hub.Close()

	registered := make(chan struct{})
	go func() {
		hub.Register(NewClient(hub))
		close(registered)
	}()

	select {
	case <-registered:
	case <-time.After(time.Second):
		t.Fatal("Register blocked after hub close")
	}
}

func TestHubManagerGetOrCreate(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())

	if m.GetHub("session-1") != nil {
		t.Fatal("expected no hub before creation")
	}

	hub := m.GetOrCreateHub("session-1")
	if hub == nil {
		t.Fatal("expected hub to be created")
	}
	if m.GetOrCreateHub("session-1") != hub {
		t.Error("expected the same hub on repeat lookup")
	}

	m.RemoveHub(model.SessionID("session-1"))
	if m.GetHub("session-1") != nil {
		t.Error("expected hub to be removed")
	}
}
