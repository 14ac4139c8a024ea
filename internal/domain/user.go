package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. The same user can own wishlists and
// contribute to items on other people's wishlists.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
