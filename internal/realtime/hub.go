package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event names the kind of change carried by a Message.
type Event string

const EventItemUpdated Event = "item_updated"

// Message is one fanout unit, addressed to a single topic.
type Message struct {
	Topic string `json:"topic"`
	Event Event  `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// WishlistTopic is the topic all viewers of one wishlist share.
func WishlistTopic(wishlistID uuid.UUID) string {
	return "wishlist:" + wishlistID.String()
}

// Client is one connected viewer. Outbound is buffered; the hub drops
// messages instead of blocking when a client cannot keep up, because a
// viewer that missed an event recovers via a full re-fetch anyway.
type Client struct {
	ID       uuid.UUID
	Outbound chan Message
	topics   map[string]bool
	done     chan struct{}
}

// Hub is a topic registry: it maps topic names to the set of subscribed
// clients and fans published messages out to them. Delivery is
// best-effort and carries no ordering promise across items.
type Hub struct {
	mu            sync.RWMutex
	log           zerolog.Logger
	subscriptions map[string]map[*Client]bool
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:           log.With().Str("component", "realtime").Logger(),
		subscriptions: make(map[string]map[*Client]bool),
	}
}

func (h *Hub) NewClient() *Client {
	return &Client{
		ID:       uuid.New(),
		Outbound: make(chan Message, 16),
		topics:   make(map[string]bool),
		done:     make(chan struct{}),
	}
}

// Join subscribes the client to a topic. Joining twice is a no-op.
func (h *Hub) Join(client *Client, topic string) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	client.topics[topic] = true
	members, ok := h.subscriptions[topic]
	if !ok {
		members = make(map[*Client]bool)
		h.subscriptions[topic] = members
	}
	members[client] = true

	h.log.Debug().Str("client_id", client.ID.String()).Str("topic", topic).Msg("client joined topic")
}

// Leave unsubscribes the client from a topic. Leaving a topic the client
// never joined is a no-op.
func (h *Hub) Leave(client *Client, topic string) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delete(client.topics, topic)
	if members, ok := h.subscriptions[topic]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.subscriptions, topic)
		}
	}

	h.log.Debug().Str("client_id", client.ID.String()).Str("topic", topic).Msg("client left topic")
}

// RemoveClient drops the client from every topic it joined.
func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic := range client.topics {
		if members, ok := h.subscriptions[topic]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.subscriptions, topic)
			}
		}
	}
	client.topics = make(map[string]bool)
}

// Publish fans the message out to every subscriber of its topic.
// Fire-and-forget: there is no acknowledgment and no retry.
func (h *Hub) Publish(msg Message) {
	if msg.Topic == "" {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.subscriptions[msg.Topic]
	if !ok {
		return
	}
	for client := range members {
		select {
		case client.Outbound <- msg:
		default:
			h.log.Warn().Str("client_id", client.ID.String()).Str("topic", msg.Topic).Msg("dropping message, outbound buffer full")
		}
	}
}

// CloseClient tears the client down and removes it from all topics.
func (h *Hub) CloseClient(client *Client) {
	close(client.done)
	h.RemoveClient(client)
	close(client.Outbound)
}

// ServeSSE streams the client's messages over a server-sent-events
// response until the request context ends or the client is closed.
func (h *Hub) ServeSSE(w http.ResponseWriter, r *http.Request, client *Client) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-client.done:
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg := <-client.Outbound:
			payload, err := json.Marshal(msg)
			if err != nil {
				h.log.Warn().Err(err).Msg("failed to marshal message")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, payload)
			flusher.Flush()
		}
	}
}
