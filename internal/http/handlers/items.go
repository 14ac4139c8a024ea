package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
)

type itemRequest struct {
	Name     *string `json:"name"`
	Link     *string `json:"link"`
	Price    *int64  `json:"price"`
	ImageURL *string `json:"image_url"`
}

type itemDTO struct {
	ID               string        `json:"id"`
	WishlistID       string        `json:"wishlist_id"`
	Name             string        `json:"name"`
	Link             *string       `json:"link"`
	Price            int64         `json:"price"`
	ImageURL         *string       `json:"image_url"`
	TotalFunded      int64         `json:"total_funded"`
	ContributorCount int           `json:"contributor_count"`
	Status           ledger.Status `json:"status"`
	CreatedAt        string        `json:"created_at"`
	UpdatedAt        string        `json:"updated_at"`
}

func toItemDTO(item *domain.Item, snapshot ledger.FundingSnapshot) itemDTO {
	return itemDTO{
		ID:               item.ID.String(),
		WishlistID:       item.WishlistID.String(),
		Name:             item.Name,
		Link:             item.Link,
		Price:            item.Price,
		ImageURL:         item.ImageURL,
		TotalFunded:      snapshot.TotalFunded,
		ContributorCount: snapshot.ContributorCount,
		Status:           snapshot.Status,
		CreatedAt:        item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        item.UpdatedAt.Format(time.RFC3339),
	}
}

func (a *App) ItemCreate(w http.ResponseWriter, r *http.Request) {
	wishlist, ok := a.ownedWishlist(w, r)
	if !ok {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" || req.Price == nil || *req.Price < 1 {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}

	item := &domain.Item{
		WishlistID: wishlist.ID,
		Name:       strings.TrimSpace(*req.Name),
		Link:       req.Link,
		Price:      *req.Price,
		ImageURL:   req.ImageURL,
	}
	if err := a.Items.Create(r.Context(), item); err != nil {
		a.Logger.Error().Err(err).Msg("create item failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	a.json(w, http.StatusCreated, toItemDTO(item, ledger.FundingSnapshot{Status: ledger.StatusAvailable}))
}

// ItemList is a public read: anyone with the wishlist ID can see its
// items and their funding state.
func (a *App) ItemList(w http.ResponseWriter, r *http.Request) {
	wishlistID, err := uuid.Parse(chi.URLParam(r, "wishlistID"))
	if err != nil {
		a.error(w, r, http.StatusNotFound, "not_found")
		return
	}
	items, err := a.itemsWithFunding(r, wishlistID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list items failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) ItemUpdate(w http.ResponseWriter, r *http.Request) {
	wishlist, ok := a.ownedWishlist(w, r)
	if !ok {
		return
	}
	item, ok := a.wishlistItem(w, r, wishlist.ID)
	if !ok {
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			a.error(w, r, http.StatusBadRequest, "bad_request")
			return
		}
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Link != nil {
		item.Link = req.Link
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.Price != nil && *req.Price != item.Price {
		if *req.Price < 1 {
			a.error(w, r, http.StatusBadRequest, "bad_request")
			return
		}
		// Price is frozen as soon as anyone pledged: the ledger treats
		// it as authoritative during admission decisions.
		snapshot, err := a.Ledger.Snapshot(r.Context(), item)
		if err != nil {
			a.Logger.Error().Err(err).Msg("aggregate item failed")
			a.error(w, r, http.StatusInternalServerError, "internal")
			return
		}
		if snapshot.ContributorCount > 0 {
			a.error(w, r, http.StatusConflict, "price_locked")
			return
		}
		item.Price = *req.Price
	}

	if err := a.Items.Update(r.Context(), item); err != nil {
		a.Logger.Error().Err(err).Msg("update item failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	snapshot, err := a.Ledger.Snapshot(r.Context(), item)
	if err != nil {
		a.Logger.Error().Err(err).Msg("aggregate item failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	a.json(w, http.StatusOK, toItemDTO(item, snapshot))
}

func (a *App) ItemDelete(w http.ResponseWriter, r *http.Request) {
	wishlist, ok := a.ownedWishlist(w, r)
	if !ok {
		return
	}
	item, ok := a.wishlistItem(w, r, wishlist.ID)
	if !ok {
		return
	}
	if err := a.Items.Delete(r.Context(), item.ID); err != nil {
		a.Logger.Error().Err(err).Msg("delete item failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) itemsWithFunding(r *http.Request, wishlistID uuid.UUID) ([]itemDTO, error) {
	items, err := a.Items.ListByWishlist(r.Context(), wishlistID)
	if err != nil {
		return nil, err
	}
	out := make([]itemDTO, 0, len(items))
	for i := range items {
		snapshot, err := a.Ledger.Snapshot(r.Context(), &items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, toItemDTO(&items[i], snapshot))
	}
	return out, nil
}

func (a *App) wishlistItem(w http.ResponseWriter, r *http.Request, wishlistID uuid.UUID) (*domain.Item, bool) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		a.error(w, r, http.StatusNotFound, "not_found")
		return nil, false
	}
	item, err := a.Items.GetByID(r.Context(), itemID)
	if err != nil || item.WishlistID != wishlistID {
		a.error(w, r, http.StatusNotFound, "not_found")
		return nil, false
	}
	return item, true
}
