package realtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
)

func receive(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-client.Outbound:
		if !ok {
			t.Fatalf("outbound channel closed")
		}
		return msg
	default:
		t.Fatalf("no message queued for client %s", client.ID)
	}
	return Message{}
}

func TestPublishReachesTopicMembersOnly(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	wishlistID := uuid.New()
	topic := WishlistTopic(wishlistID)

	viewer := hub.NewClient()
	other := hub.NewClient()
	hub.Join(viewer, topic)
	hub.Join(other, WishlistTopic(uuid.New()))

	hub.Publish(Message{Topic: topic, Event: EventItemUpdated, Data: "payload"})

	msg := receive(t, viewer)
	if msg.Topic != topic || msg.Event != EventItemUpdated {
		t.Fatalf("message = %+v", msg)
	}
	select {
	case msg := <-other.Outbound:
		t.Fatalf("unsubscribed client received %+v", msg)
	default:
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	topic := WishlistTopic(uuid.New())
	client := hub.NewClient()

	hub.Join(client, topic)
	hub.Join(client, topic)
	hub.Publish(Message{Topic: topic, Event: EventItemUpdated})

	receive(t, client)
	select {
	case <-client.Outbound:
		t.Fatalf("duplicate join caused a duplicate delivery")
	default:
	}
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	topic := WishlistTopic(uuid.New())
	client := hub.NewClient()

	hub.Join(client, topic)
	hub.Leave(client, topic)
	hub.Leave(client, "never-joined")
	hub.Leave(client, "  ")

	hub.Publish(Message{Topic: topic, Event: EventItemUpdated})
	select {
	case msg := <-client.Outbound:
		t.Fatalf("client received %+v after leaving", msg)
	default:
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if len(hub.subscriptions) != 0 {
		t.Fatalf("empty topics were not pruned: %d left", len(hub.subscriptions))
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	topic := WishlistTopic(uuid.New())
	client := hub.NewClient()
	hub.Join(client, topic)

	// Over-publish past the outbound buffer; Publish must never block.
	for i := 0; i < cap(client.Outbound)+5; i++ {
		hub.Publish(Message{Topic: topic, Event: EventItemUpdated})
	}

	if got := len(client.Outbound); got != cap(client.Outbound) {
		t.Fatalf("queued = %d, want a full buffer of %d", got, cap(client.Outbound))
	}
}

func TestCloseClientRemovesAllSubscriptions(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	first := WishlistTopic(uuid.New())
	second := WishlistTopic(uuid.New())
	client := hub.NewClient()
	hub.Join(client, first)
	hub.Join(client, second)

	hub.CloseClient(client)

	select {
	case <-client.done:
	default:
		t.Fatalf("done channel still open")
	}
	if _, ok := <-client.Outbound; ok {
		t.Fatalf("outbound channel still open")
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if len(hub.subscriptions) != 0 {
		t.Fatalf("subscriptions left after close: %d", len(hub.subscriptions))
	}
}

func TestLedgerPublisherAddressesWishlistTopic(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	wishlistID := uuid.New()
	itemID := uuid.New()
	client := hub.NewClient()
	hub.Join(client, WishlistTopic(wishlistID))

	pub := NewLedgerPublisher(hub)
	pub.PublishItemUpdate(wishlistID, itemID, ledger.FundingSnapshot{
		TotalFunded:      750,
		ContributorCount: 2,
		Status:           ledger.StatusPartiallyFunded,
	})

	msg := receive(t, client)
	update, ok := msg.Data.(ItemUpdate)
	if !ok {
		t.Fatalf("data type = %T", msg.Data)
	}
	if update.Type != "ITEM_UPDATED" || update.ItemID != itemID {
		t.Fatalf("update = %+v", update)
	}
	if update.Total != 750 || update.Contributors != 2 || update.Status != ledger.StatusPartiallyFunded {
		t.Fatalf("update payload = %+v", update)
	}
}
