package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
)

// Publisher receives the committed funding state of an item. Delivery is
// best-effort: publish failures never roll back a committed pledge.
type Publisher interface {
	PublishItemUpdate(wishlistID, itemID uuid.UUID, snapshot FundingSnapshot)
}

// Service is the transactional core for pledges. Every mutation runs the
// read-validate-write sequence under the item lock, so no interleaving of
// two operations on the same item can push the funded total past the
// price. Publishing happens after the lock is released.
type Service struct {
	items         domain.ItemRepository
	contributions domain.ContributionRepository
	locks         *ItemLocks
	agg           *Aggregator
	publisher     Publisher
	log           zerolog.Logger
}

func NewService(items domain.ItemRepository, contributions domain.ContributionRepository, publisher Publisher, log zerolog.Logger) *Service {
	return &Service{
		items:         items,
		contributions: contributions,
		locks:         NewItemLocks(),
		agg:           NewAggregator(contributions),
		publisher:     publisher,
		log:           log.With().Str("component", "ledger").Logger(),
	}
}

// Contribute records a new pledge of amount toward the item. The pledge
// is admitted only if it fits within the remaining unfunded part of the
// price and the user has no pledge on this item yet.
func (s *Service) Contribute(ctx context.Context, itemID, userID uuid.UUID, amount int64) (*domain.Contribution, FundingSnapshot, error) {
	if amount < 1 {
		return nil, FundingSnapshot{}, fmt.Errorf("%w: amount must be at least 1", domain.ErrValidation)
	}

	var (
		item         *domain.Item
		contribution *domain.Contribution
		snapshot     FundingSnapshot
	)
	err := s.locks.WithItemLock(itemID, func() error {
		var err error
		item, err = s.items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if err := s.ensureNoExistingPledge(ctx, itemID, userID); err != nil {
			return err
		}
		current, err := s.agg.Aggregate(ctx, itemID, item.Price)
		if err != nil {
			return err
		}
		remaining := item.Price - current.TotalFunded
		if remaining <= 0 {
			return domain.ErrFullyFunded
		}
		if amount > remaining {
			return domain.ErrExceedsRemaining
		}
		contribution = &domain.Contribution{ItemID: itemID, UserID: userID, Amount: amount}
		if err := s.contributions.Create(ctx, contribution); err != nil {
			return err
		}
		snapshot, err = s.agg.Aggregate(ctx, itemID, item.Price)
		return err
	})
	if err != nil {
		return nil, FundingSnapshot{}, err
	}

	s.publish(item.WishlistID, itemID, snapshot)
	return contribution, snapshot, nil
}

// Reserve claims the whole price in one pledge. Only valid while the item
// has no funding at all.
func (s *Service) Reserve(ctx context.Context, itemID, userID uuid.UUID) (*domain.Contribution, FundingSnapshot, error) {
	var (
		item         *domain.Item
		contribution *domain.Contribution
		snapshot     FundingSnapshot
	)
	err := s.locks.WithItemLock(itemID, func() error {
		var err error
		item, err = s.items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		current, err := s.agg.Aggregate(ctx, itemID, item.Price)
		if err != nil {
			return err
		}
		if current.TotalFunded > 0 {
			return domain.ErrAlreadyFunded
		}
		if err := s.ensureNoExistingPledge(ctx, itemID, userID); err != nil {
			return err
		}
		contribution = &domain.Contribution{ItemID: itemID, UserID: userID, Amount: item.Price}
		if err := s.contributions.Create(ctx, contribution); err != nil {
			return err
		}
		snapshot, err = s.agg.Aggregate(ctx, itemID, item.Price)
		return err
	})
	if err != nil {
		return nil, FundingSnapshot{}, err
	}

	s.publish(item.WishlistID, itemID, snapshot)
	return contribution, snapshot, nil
}

// UpdateContribution changes the user's existing pledge to newAmount.
// Zero withdraws the pledge (the row stays, excluded from totals); a
// withdrawal is refused on a fully funded item so a funded gift cannot be
// silently unfunded.
func (s *Service) UpdateContribution(ctx context.Context, itemID, userID uuid.UUID, newAmount int64) (*domain.Contribution, FundingSnapshot, error) {
	if newAmount < 0 {
		return nil, FundingSnapshot{}, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}

	var (
		item         *domain.Item
		contribution *domain.Contribution
		snapshot     FundingSnapshot
	)
	err := s.locks.WithItemLock(itemID, func() error {
		var err error
		item, err = s.items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		existing, err := s.contributions.GetByItemAndUser(ctx, itemID, userID)
		if err != nil {
			return err
		}
		current, err := s.agg.Aggregate(ctx, itemID, item.Price)
		if err != nil {
			return err
		}
		othersTotal := current.TotalFunded - existing.Amount

		if newAmount == 0 {
			if current.TotalFunded >= item.Price {
				return domain.ErrCannotWithdraw
			}
		} else if newAmount > item.Price-othersTotal {
			return domain.ErrExceedsRemaining
		}

		contribution, err = s.contributions.UpdateAmount(ctx, existing.ID, newAmount)
		if err != nil {
			return err
		}
		snapshot, err = s.agg.Aggregate(ctx, itemID, item.Price)
		return err
	})
	if err != nil {
		return nil, FundingSnapshot{}, err
	}

	s.publish(item.WishlistID, itemID, snapshot)
	return contribution, snapshot, nil
}

// GetContribution returns the user's own pledge on the item, withdrawn or
// not. Read-only, no lock taken.
func (s *Service) GetContribution(ctx context.Context, itemID, userID uuid.UUID) (*domain.Contribution, error) {
	return s.contributions.GetByItemAndUser(ctx, itemID, userID)
}

// Snapshot computes the current funding summary for an item without
// taking the lock. Concurrent writers may make the result stale by the
// time the caller reads it.
func (s *Service) Snapshot(ctx context.Context, item *domain.Item) (FundingSnapshot, error) {
	return s.agg.Aggregate(ctx, item.ID, item.Price)
}

func (s *Service) ensureNoExistingPledge(ctx context.Context, itemID, userID uuid.UUID) error {
	_, err := s.contributions.GetByItemAndUser(ctx, itemID, userID)
	if err == nil {
		return domain.ErrDuplicateContribution
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// publish runs outside the lock scope so slow subscribers cannot stall
// other contributors. Committed state is authoritative; the live feed is
// advisory.
func (s *Service) publish(wishlistID, itemID uuid.UUID, snapshot FundingSnapshot) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishItemUpdate(wishlistID, itemID, snapshot)
	s.log.Debug().
		Str("item_id", itemID.String()).
		Int64("total_funded", snapshot.TotalFunded).
		Str("status", string(snapshot.Status)).
		Msg("published item update")
}
