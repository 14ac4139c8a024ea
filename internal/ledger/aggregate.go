package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
)

// Status describes how far along an item's funding is.
type Status string

const (
	StatusAvailable       Status = "AVAILABLE"
	StatusPartiallyFunded Status = "PARTIALLY_FUNDED"
	StatusFullyFunded     Status = "FULLY_FUNDED"
)

// FundingSnapshot is the derived funding summary for one item at a point
// in time. It is computed from live contributions and never persisted.
type FundingSnapshot struct {
	TotalFunded      int64  `json:"total_funded"`
	ContributorCount int    `json:"contributor_count"`
	Status           Status `json:"status"`
}

// StatusFor derives the funding status from a total and the item price.
func StatusFor(totalFunded, price int64) Status {
	switch {
	case totalFunded <= 0:
		return StatusAvailable
	case totalFunded >= price:
		return StatusFullyFunded
	default:
		return StatusPartiallyFunded
	}
}

// Aggregator computes funding snapshots. It is safe to call both inside
// an item lock scope (admission decisions) and outside one (plain reads,
// which may observe a stale but internally consistent snapshot).
type Aggregator struct {
	contributions domain.ContributionRepository
}

func NewAggregator(contributions domain.ContributionRepository) *Aggregator {
	return &Aggregator{contributions: contributions}
}

func (a *Aggregator) Aggregate(ctx context.Context, itemID uuid.UUID, price int64) (FundingSnapshot, error) {
	total, count, err := a.contributions.AggregateByItem(ctx, itemID)
	if err != nil {
		return FundingSnapshot{}, err
	}
	return FundingSnapshot{
		TotalFunded:      total,
		ContributorCount: count,
		Status:           StatusFor(total, price),
	}, nil
}
