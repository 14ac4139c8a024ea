package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/middleware"
)

type wishlistRequest struct {
	Title     *string `json:"title"`
	Occasion  *string `json:"occasion"`
	EventDate *string `json:"event_date"`
	Currency  *string `json:"currency"`
}

type wishlistDTO struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Occasion  *string `json:"occasion"`
	EventDate *string `json:"event_date"`
	Slug      string  `json:"slug"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toWishlistDTO(w *domain.Wishlist) wishlistDTO {
	dto := wishlistDTO{
		ID:        w.ID.String(),
		Title:     w.Title,
		Occasion:  w.Occasion,
		Slug:      w.Slug,
		Currency:  w.Currency,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
	if w.EventDate != nil {
		date := w.EventDate.Format("2006-01-02")
		dto.EventDate = &date
	}
	return dto
}

// newSlug returns the url-safe random token that makes a wishlist
// publicly shareable.
func newSlug() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

func (a *App) WishlistCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		a.error(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}

	wishlist := &domain.Wishlist{
		UserID:   userID,
		Title:    strings.TrimSpace(*req.Title),
		Occasion: req.Occasion,
		Slug:     newSlug(),
		Currency: "EUR",
	}
	if req.Currency != nil && *req.Currency != "" {
		wishlist.Currency = strings.ToUpper(*req.Currency)
	}
	if req.EventDate != nil && *req.EventDate != "" {
		date, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			a.error(w, r, http.StatusBadRequest, "bad_request")
			return
		}
		wishlist.EventDate = &date
	}

	if err := a.Wishlists.Create(r.Context(), wishlist); err != nil {
		a.Logger.Error().Err(err).Msg("create wishlist failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	a.json(w, http.StatusCreated, toWishlistDTO(wishlist))
}

func (a *App) WishlistList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		a.error(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	wishlists, err := a.Wishlists.ListByUser(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list wishlists failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	out := make([]wishlistDTO, 0, len(wishlists))
	for i := range wishlists {
		out = append(out, toWishlistDTO(&wishlists[i]))
	}
	a.json(w, http.StatusOK, out)
}

func (a *App) WishlistGet(w http.ResponseWriter, r *http.Request) {
	wishlist, ok := a.ownedWishlist(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, toWishlistDTO(wishlist))
}

func (a *App) WishlistUpdate(w http.ResponseWriter, r *http.Request) {
	wishlist, ok := a.ownedWishlist(w, r)
	if !ok {
		return
	}
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			a.error(w, r, http.StatusBadRequest, "bad_request")
			return
		}
		wishlist.Title = strings.TrimSpace(*req.Title)
	}
	if req.Occasion != nil {
		wishlist.Occasion = req.Occasion
	}
	if req.Currency != nil && *req.Currency != "" {
		wishlist.Currency = strings.ToUpper(*req.Currency)
	}
	if req.EventDate != nil {
		if *req.EventDate == "" {
			wishlist.EventDate = nil
		} else {
			date, err := time.Parse("2006-01-02", *req.EventDate)
			if err != nil {
				a.error(w, r, http.StatusBadRequest, "bad_request")
				return
			}
			wishlist.EventDate = &date
		}
	}

	if err := a.Wishlists.Update(r.Context(), wishlist); err != nil {
		a.Logger.Error().Err(err).Msg("update wishlist failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	a.json(w, http.StatusOK, toWishlistDTO(wishlist))
}

func (a *App) WishlistDelete(w http.ResponseWriter, r *http.Request) {
	wishlist, ok := a.ownedWishlist(w, r)
	if !ok {
		return
	}
	if err := a.Wishlists.Delete(r.Context(), wishlist.ID); err != nil {
		a.Logger.Error().Err(err).Msg("delete wishlist failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WishlistPublic serves the shareable wishlist view: no auth, items
// carry their live funding snapshots.
func (a *App) WishlistPublic(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	wishlist, err := a.Wishlists.GetBySlug(r.Context(), slug)
	if err != nil {
		a.error(w, r, http.StatusNotFound, "not_found")
		return
	}
	items, err := a.itemsWithFunding(r, wishlist.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load public wishlist items failed")
		a.error(w, r, http.StatusInternalServerError, "internal")
		return
	}

	dto := toWishlistDTO(wishlist)
	a.json(w, http.StatusOK, map[string]any{
		"id":         dto.ID,
		"title":      dto.Title,
		"occasion":   dto.Occasion,
		"event_date": dto.EventDate,
		"slug":       dto.Slug,
		"currency":   dto.Currency,
		"items":      items,
	})
}

// ownedWishlist loads the wishlist from the URL and enforces ownership.
// A wishlist owned by someone else reads as not found, so slugs stay the
// only public handle.
func (a *App) ownedWishlist(w http.ResponseWriter, r *http.Request) (*domain.Wishlist, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		a.error(w, r, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	wishlistID, err := uuid.Parse(chi.URLParam(r, "wishlistID"))
	if err != nil {
		a.error(w, r, http.StatusNotFound, "not_found")
		return nil, false
	}
	wishlist, err := a.Wishlists.GetByID(r.Context(), wishlistID)
	if err != nil || wishlist.UserID != userID {
		a.error(w, r, http.StatusNotFound, "not_found")
		return nil, false
	}
	return wishlist, true
}
