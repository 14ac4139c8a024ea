package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contribution is one user's pledge toward one item. At most one row
// exists per (item, user) pair. Amount 0 marks a withdrawn pledge: the
// row survives so the pair keeps its slot, but it never counts toward
// funding totals.
type Contribution struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Withdrawn reports whether the pledge has been zeroed out.
func (c *Contribution) Withdrawn() bool {
	return c.Amount == 0
}
