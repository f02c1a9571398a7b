package notify

import (
	"context"
	"encoding/json"
)

type PayloadType string

const (
	TypePayments     PayloadType = "PAYMENTS"
	TypePostPayments PayloadType = "POST_PAYMENTS"
)

// Payload is the message pushed to a subscriber's notification stream.
type Payload struct {
	Type    PayloadType `json:"type"`
	Message string      `json:"message"`
}

type update struct {
	subscriberID string
	payload      Payload
}

// Client is one live notification stream for a subscriber. A subscriber may
// hold several streams at once (one per logged-in client).
type Client struct {
	hub          *Hub
	conn         *Conn
	send         chan []byte
	subscriberID string
}

// Hub fans notification payloads out to the streams registered for each
// subscriber id. All bookkeeping happens on the Run goroutine, so publishes
// from request handlers and the consumer loop never race.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan update
	done       chan struct{}
	clients    map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan update),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			set, ok := h.clients[c.subscriberID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[c.subscriberID] = set
			}
			set[c] = true
		case c := <-h.unregister:
			if set, ok := h.clients[c.subscriberID]; ok {
				if _, exists := set[c]; exists {
					delete(set, c)
					close(c.send)
				}
				if len(set) == 0 {
					delete(h.clients, c.subscriberID)
				}
			}
		case upd := <-h.broadcast:
			msg, _ := json.Marshal(upd.payload)
			if set, ok := h.clients[upd.subscriberID]; ok {
				for c := range set {
					select {
					case c.send <- msg:
					default:
						// Slow client, drop the stream rather than block the hub.
						delete(set, c)
						close(c.send)
					}
				}
			}
		case <-ctx.Done():
			// Closing done releases any goroutine still trying to reach the
			// loop; nothing may send on the hub channels past this point.
			close(h.done)
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}
			return
		}
	}
}

// Publish delivers a payload to every stream registered for the subscriber.
// Fire-and-forget: a subscriber with no open stream simply misses the push.
func (h *Hub) Publish(subscriberID string, payload Payload) {
	go func() {
		select {
		case h.broadcast <- update{subscriberID: subscriberID, payload: payload}:
		case <-h.done:
		}
	}()
}

// add registers the client, reporting false when the hub has shut down.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// drop removes the client. Safe to call after shutdown.
func (h *Hub) drop(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
