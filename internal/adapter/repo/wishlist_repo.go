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

// WishlistRepositoryPG implements WishlistRepository using PostgreSQL.
type WishlistRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewWishlistRepository creates a new wishlist repo.
func NewWishlistRepository(sql infra.SQLExecutor) *WishlistRepositoryPG {
	return &WishlistRepositoryPG{sql: sql}
}

// Create inserts a new wishlist record.
func (r *WishlistRepositoryPG) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	now := time.Now().UTC()
	wishlist.ID = uuid.New()
	wishlist.CreatedAt = now
	wishlist.UpdatedAt = now
	_, err := r.sql.Exec(ctx, sqlinline.QInsertWishlist,
		wishlist.ID, wishlist.UserID, wishlist.Title, wishlist.Occasion, wishlist.EventDate,
		wishlist.Slug, wishlist.Currency, wishlist.CreatedAt, wishlist.UpdatedAt)
	return err
}

// GetByID returns the wishlist with the given ID.
func (r *WishlistRepositoryPG) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error) {
	return scanWishlistRow(r.sql.QueryRow(ctx, sqlinline.QSelectWishlistByID, id))
}

// GetBySlug returns the wishlist with the given public slug.
func (r *WishlistRepositoryPG) GetBySlug(ctx context.Context, slug string) (*domain.Wishlist, error) {
	return scanWishlistRow(r.sql.QueryRow(ctx, sqlinline.QSelectWishlistBySlug, slug))
}

// ListByUser returns the user's wishlists, newest first.
func (r *WishlistRepositoryPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wishlist, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectWishlistsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Wishlist
	for rows.Next() {
		var wishlist domain.Wishlist
		if err := scanWishlist(rows, &wishlist); err != nil {
			return nil, err
		}
		items = append(items, wishlist)
	}
	return items, rows.Err()
}

// Update persists title, occasion, event date and currency changes.
func (r *WishlistRepositoryPG) Update(ctx context.Context, wishlist *domain.Wishlist) error {
	wishlist.UpdatedAt = time.Now().UTC()
	_, err := r.sql.Exec(ctx, sqlinline.QUpdateWishlist,
		wishlist.ID, wishlist.Title, wishlist.Occasion, wishlist.EventDate, wishlist.Currency, wishlist.UpdatedAt)
	return err
}

// Delete removes the wishlist; items and contributions cascade.
func (r *WishlistRepositoryPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.sql.Exec(ctx, sqlinline.QDeleteWishlist, id)
	return err
}

func scanWishlistRow(row pgx.Row) (*domain.Wishlist, error) {
	var wishlist domain.Wishlist
	err := scanWishlistInto(row.Scan, &wishlist)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func scanWishlist(rows pgx.Rows, wishlist *domain.Wishlist) error {
	return scanWishlistInto(rows.Scan, wishlist)
}

func scanWishlistInto(scan func(dest ...any) error, w *domain.Wishlist) error {
	return scan(&w.ID, &w.UserID, &w.Title, &w.Occasion, &w.EventDate, &w.Slug, &w.Currency, &w.CreatedAt, &w.UpdatedAt)
}
