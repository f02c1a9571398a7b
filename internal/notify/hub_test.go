package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, subscriberID string) *Client {
	return &Client{hub: h, send: make(chan []byte, 8), subscriberID: subscriberID}
}

func receive(t *testing.T, c *Client) Payload {
	t.Helper()
	select {
	case raw := <-c.send:
		var p Payload
		require.NoError(t, json.Unmarshal(raw, &p))
		return p
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for payload")
		return Payload{}
	}
}

func TestHub_PublishReachesRegisteredClient(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := newTestClient(h, "s1")
	h.register <- c

	h.Publish("s1", Payload{Type: TypePayments, Message: "Payment information sent!"})

	got := receive(t, c)
	assert.Equal(t, TypePayments, got.Type)
	assert.Equal(t, "Payment information sent!", got.Message)
}

func TestHub_PublishIsScopedToSubscriber(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	alice := newTestClient(h, "s1")
	bob := newTestClient(h, "s2")
	h.register <- alice
	h.register <- bob

	h.Publish("s1", Payload{Type: TypePostPayments, Message: "done"})

	got := receive(t, alice)
	assert.Equal(t, TypePostPayments, got.Type)

	select {
	case raw := <-bob.send:
		t.Fatalf("unexpected payload for other subscriber: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FansOutToEveryStream(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	first := newTestClient(h, "s1")
	second := newTestClient(h, "s1")
	h.register <- first
	h.register <- second

	h.Publish("s1", Payload{Type: TypePayments, Message: "hi"})

	assert.Equal(t, "hi", receive(t, first).Message)
	assert.Equal(t, "hi", receive(t, second).Message)
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	c := newTestClient(h, "s1")
	h.register <- c
	h.unregister <- c

	select {
	case _, open := <-c.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHub_ShutdownReleasesLateSenders(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	c := newTestClient(h, "s1")
	h.register <- c

	cancel()

	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("hub did not signal shutdown")
	}

	select {
	case _, open := <-c.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on shutdown")
	}

	// Each of these would hang on a hub channel with nobody left to receive.
	dropped := make(chan struct{})
	go func() {
		h.drop(c)
		close(dropped)
	}()
	select {
	case <-dropped:
	case <-time.After(time.Second):
		t.Fatal("drop blocked after shutdown")
	}

	assert.False(t, h.add(newTestClient(h, "s2")))
	h.Publish("s1", Payload{Type: TypePayments, Message: "late"})
}

func TestHub_PublishWithNoStreamsDoesNotBlock(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	h.Publish("nobody", Payload{Type: TypePayments, Message: "dropped"})

	// Register afterwards to prove the hub loop is still responsive.
	c := newTestClient(h, "s1")
	h.register <- c
	h.Publish("s1", Payload{Type: TypePayments, Message: "alive"})
	assert.Equal(t, "alive", receive(t, c).Message)
}
