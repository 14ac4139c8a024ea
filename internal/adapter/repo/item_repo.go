package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/infra"
	"github.com/Gaetan-M/SocialWishlist/internal/sqlinline"
)

// ItemRepositoryPG implements ItemRepository using PostgreSQL.
type ItemRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewItemRepository creates a new item repo.
func NewItemRepository(sql infra.SQLExecutor) *ItemRepositoryPG {
	return &ItemRepositoryPG{sql: sql}
}

// Create inserts a new item record.
func (r *ItemRepositoryPG) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now
	_, err := r.sql.Exec(ctx, sqlinline.QInsertItem,
		item.ID, item.WishlistID, item.Name, item.Link, item.Price, item.ImageURL, item.CreatedAt, item.UpdatedAt)
	return err
}

// GetByID returns the item with the given ID.
func (r *ItemRepositoryPG) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	err := r.sql.QueryRow(ctx, sqlinline.QSelectItemByID, id).
		Scan(&item.ID, &item.WishlistID, &item.Name, &item.Link, &item.Price, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByWishlist returns the wishlist's items in creation order.
func (r *ItemRepositoryPG) ListByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]domain.Item, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectItemsByWishlist, wishlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.WishlistID, &item.Name, &item.Link, &item.Price, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update persists name, link, price and image changes.
func (r *ItemRepositoryPG) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()
	_, err := r.sql.Exec(ctx, sqlinline.QUpdateItem,
		item.ID, item.Name, item.Link, item.Price, item.ImageURL, item.UpdatedAt)
	return err
}

// Delete removes the item; contributions cascade.
func (r *ItemRepositoryPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.sql.Exec(ctx, sqlinline.QDeleteItem, id)
	return err
}
