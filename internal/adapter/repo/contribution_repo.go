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

// ContributionRepositoryPG implements ContributionRepository using
// PostgreSQL. Each write is a single statement; the ledger's item lock
// serializes the surrounding read-validate-write sequence, and the
// (item_id, user_id) unique constraint backstops pair uniqueness.
type ContributionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContributionRepository creates a new contribution repo.
func NewContributionRepository(sql infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{sql: sql}
}

// Create inserts a new pledge.
func (r *ContributionRepositoryPG) Create(ctx context.Context, contribution *domain.Contribution) error {
	now := time.Now().UTC()
	contribution.ID = uuid.New()
	contribution.CreatedAt = now
	contribution.UpdatedAt = now
	_, err := r.sql.Exec(ctx, sqlinline.QInsertContribution,
		contribution.ID, contribution.ItemID, contribution.UserID, contribution.Amount,
		contribution.CreatedAt, contribution.UpdatedAt)
	return err
}

// GetByItemAndUser returns the pledge for the (item, user) pair.
func (r *ContributionRepositoryPG) GetByItemAndUser(ctx context.Context, itemID, userID uuid.UUID) (*domain.Contribution, error) {
	var c domain.Contribution
	err := r.sql.QueryRow(ctx, sqlinline.QSelectContributionByItemAndUser, itemID, userID).
		Scan(&c.ID, &c.ItemID, &c.UserID, &c.Amount, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AggregateByItem sums and counts pledges with amount > 0.
func (r *ContributionRepositoryPG) AggregateByItem(ctx context.Context, itemID uuid.UUID) (int64, int, error) {
	var total int64
	var count int
	err := r.sql.QueryRow(ctx, sqlinline.QAggregateContributionsByItem, itemID).Scan(&total, &count)
	if err != nil {
		return 0, 0, err
	}
	return total, count, nil
}

// UpdateAmount sets the pledge to a new amount and returns the row.
func (r *ContributionRepositoryPG) UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) (*domain.Contribution, error) {
	var c domain.Contribution
	err := r.sql.QueryRow(ctx, sqlinline.QUpdateContributionAmount, id, amount, time.Now().UTC()).
		Scan(&c.ID, &c.ItemID, &c.UserID, &c.Amount, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
