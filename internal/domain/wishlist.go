package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist groups items to be funded. The slug is the shareable public
// handle; everything else is only visible to the owner.
type Wishlist struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Occasion  *string
	EventDate *time.Time
	Slug      string
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
