package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a wishlist entry. Price is in the smallest currency unit and
// must not change once the item has contributions.
type Item struct {
	ID         uuid.UUID
	WishlistID uuid.UUID
	Name       string
	Link       *string
	Price      int64
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
