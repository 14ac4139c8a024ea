package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// WishlistRepository handles wishlist persistence.
type WishlistRepository interface {
	Create(ctx context.Context, wishlist *Wishlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Wishlist, error)
	GetBySlug(ctx context.Context, slug string) (*Wishlist, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Wishlist, error)
	Update(ctx context.Context, wishlist *Wishlist) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository handles item persistence.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContributionRepository persists pledges. Writes are single atomic
// statements; serialization across callers is the ledger's job.
type ContributionRepository interface {
	Create(ctx context.Context, contribution *Contribution) error
	GetByItemAndUser(ctx context.Context, itemID, userID uuid.UUID) (*Contribution, error)
	// AggregateByItem sums and counts contributions with amount > 0.
	AggregateByItem(ctx context.Context, itemID uuid.UUID) (total int64, count int, err error)
	// UpdateAmount mutates an existing pledge in place and returns the
	// updated row.
	UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) (*Contribution, error)
}
