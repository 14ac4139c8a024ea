package realtime

import (
	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
)

// ItemUpdate is the payload viewers receive when an item's funding state
// changed. Field names match what the web client listens for.
type ItemUpdate struct {
	Type         string        `json:"type"`
	ItemID       uuid.UUID     `json:"itemId"`
	Total        int64         `json:"total"`
	Contributors int           `json:"contributors"`
	Status       ledger.Status `json:"status"`
}

// LedgerPublisher bridges committed ledger results onto the hub.
type LedgerPublisher struct {
	hub *Hub
}

func NewLedgerPublisher(hub *Hub) *LedgerPublisher {
	return &LedgerPublisher{hub: hub}
}

func (p *LedgerPublisher) PublishItemUpdate(wishlistID, itemID uuid.UUID, snapshot ledger.FundingSnapshot) {
	p.hub.Publish(Message{
		Topic: WishlistTopic(wishlistID),
		Event: EventItemUpdated,
		Data: ItemUpdate{
			Type:         "ITEM_UPDATED",
			ItemID:       itemID,
			Total:        snapshot.TotalFunded,
			Contributors: snapshot.ContributorCount,
			Status:       snapshot.Status,
		},
	})
}
