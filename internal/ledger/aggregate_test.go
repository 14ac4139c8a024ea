package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/adapter/repo"
	"github.com/Gaetan-M/SocialWishlist/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		price int64
		want  Status
	}{
		{"no funding", 0, 1000, StatusAvailable},
		{"negative total", -50, 1000, StatusAvailable},
		{"partial", 1, 1000, StatusPartiallyFunded},
		{"almost there", 999, 1000, StatusPartiallyFunded},
		{"exact", 1000, 1000, StatusFullyFunded},
		{"above price", 1500, 1000, StatusFullyFunded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.total, tt.price); got != tt.want {
				t.Fatalf("StatusFor(%d, %d) = %s, want %s", tt.total, tt.price, got, tt.want)
			}
		})
	}
}

func TestAggregateSkipsWithdrawnPledges(t *testing.T) {
	contributions := repo.NewContributionRepositoryMem()
	agg := NewAggregator(contributions)
	ctx := context.Background()
	itemID := uuid.New()

	active := &domain.Contribution{ItemID: itemID, UserID: uuid.New(), Amount: 400}
	withdrawn := &domain.Contribution{ItemID: itemID, UserID: uuid.New(), Amount: 250}
	other := &domain.Contribution{ItemID: uuid.New(), UserID: uuid.New(), Amount: 999}
	for _, c := range []*domain.Contribution{active, withdrawn, other} {
		if err := contributions.Create(ctx, c); err != nil {
			t.Fatalf("seeding contribution: %v", err)
		}
	}
	if _, err := contributions.UpdateAmount(ctx, withdrawn.ID, 0); err != nil {
		t.Fatalf("withdrawing: %v", err)
	}

	snap, err := agg.Aggregate(ctx, itemID, 1000)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if snap.TotalFunded != 400 || snap.ContributorCount != 1 || snap.Status != StatusPartiallyFunded {
		t.Fatalf("snapshot = %+v", snap)
	}

	// Reads are idempotent; the same state yields the same snapshot.
	again, err := agg.Aggregate(ctx, itemID, 1000)
	if err != nil {
		t.Fatalf("second aggregate: %v", err)
	}
	if again != snap {
		t.Fatalf("repeated aggregate = %+v, want %+v", again, snap)
	}
}

func TestAggregateEmptyItem(t *testing.T) {
	agg := NewAggregator(repo.NewContributionRepositoryMem())

	snap, err := agg.Aggregate(context.Background(), uuid.New(), 500)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if snap.TotalFunded != 0 || snap.ContributorCount != 0 || snap.Status != StatusAvailable {
		t.Fatalf("snapshot = %+v", snap)
	}
}
