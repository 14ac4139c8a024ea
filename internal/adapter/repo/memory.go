package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
)

// In-memory repository implementations backing tests and local runs
// without a database. Each write is atomic under the repo mutex, which
// matches the single-statement guarantee of the PostgreSQL versions.

// UserRepositoryMem is a map-backed UserRepository.
type UserRepositoryMem struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserRepositoryMem() *UserRepositoryMem {
	return &UserRepositoryMem{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepositoryMem) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepositoryMem) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepositoryMem) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// WishlistRepositoryMem is a map-backed WishlistRepository.
type WishlistRepositoryMem struct {
	mu        sync.RWMutex
	wishlists map[uuid.UUID]domain.Wishlist
}

func NewWishlistRepositoryMem() *WishlistRepositoryMem {
	return &WishlistRepositoryMem{wishlists: make(map[uuid.UUID]domain.Wishlist)}
}

func (r *WishlistRepositoryMem) Create(_ context.Context, wishlist *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	wishlist.ID = uuid.New()
	wishlist.CreatedAt = now
	wishlist.UpdatedAt = now
	r.wishlists[wishlist.ID] = *wishlist
	return nil
}

func (r *WishlistRepositoryMem) GetByID(_ context.Context, id uuid.UUID) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if wishlist, ok := r.wishlists[id]; ok {
		return &wishlist, nil
	}
	return nil, domain.ErrNotFound
}

func (r *WishlistRepositoryMem) GetBySlug(_ context.Context, slug string) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, wishlist := range r.wishlists {
		if wishlist.Slug == slug {
			w := wishlist
			return &w, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *WishlistRepositoryMem) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Wishlist
	for _, wishlist := range r.wishlists {
		if wishlist.UserID == userID {
			items = append(items, wishlist)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *WishlistRepositoryMem) Update(_ context.Context, wishlist *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wishlists[wishlist.ID]; !ok {
		return domain.ErrNotFound
	}
	wishlist.UpdatedAt = time.Now().UTC()
	r.wishlists[wishlist.ID] = *wishlist
	return nil
}

func (r *WishlistRepositoryMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wishlists, id)
	return nil
}

// ItemRepositoryMem is a map-backed ItemRepository.
type ItemRepositoryMem struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Item
}

func NewItemRepositoryMem() *ItemRepositoryMem {
	return &ItemRepositoryMem{items: make(map[uuid.UUID]domain.Item)}
}

func (r *ItemRepositoryMem) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = *item
	return nil
}

func (r *ItemRepositoryMem) GetByID(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if item, ok := r.items[id]; ok {
		return &item, nil
	}
	return nil, domain.ErrNotFound
}

func (r *ItemRepositoryMem) ListByWishlist(_ context.Context, wishlistID uuid.UUID) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Item
	for _, item := range r.items {
		if item.WishlistID == wishlistID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *ItemRepositoryMem) Update(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	item.UpdatedAt = time.Now().UTC()
	r.items[item.ID] = *item
	return nil
}

func (r *ItemRepositoryMem) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// ContributionRepositoryMem is a map-backed ContributionRepository.
type ContributionRepositoryMem struct {
	mu            sync.RWMutex
	contributions map[uuid.UUID]domain.Contribution
}

func NewContributionRepositoryMem() *ContributionRepositoryMem {
	return &ContributionRepositoryMem{contributions: make(map[uuid.UUID]domain.Contribution)}
}

func (r *ContributionRepositoryMem) Create(_ context.Context, contribution *domain.Contribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	contribution.ID = uuid.New()
	contribution.CreatedAt = now
	contribution.UpdatedAt = now
	r.contributions[contribution.ID] = *contribution
	return nil
}

func (r *ContributionRepositoryMem) GetByItemAndUser(_ context.Context, itemID, userID uuid.UUID) (*domain.Contribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contributions {
		if c.ItemID == itemID && c.UserID == userID {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ContributionRepositoryMem) AggregateByItem(_ context.Context, itemID uuid.UUID) (int64, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	var count int
	for _, c := range r.contributions {
		if c.ItemID == itemID && c.Amount > 0 {
			total += c.Amount
			count++
		}
	}
	return total, count, nil
}

func (r *ContributionRepositoryMem) UpdateAmount(_ context.Context, id uuid.UUID, amount int64) (*domain.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contributions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Amount = amount
	c.UpdatedAt = time.Now().UTC()
	r.contributions[id] = c
	return &c, nil
}
