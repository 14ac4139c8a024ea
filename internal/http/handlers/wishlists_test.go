package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestWishlistCreate(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")

	rec := httptest.NewRecorder()
	a.WishlistCreate(rec, newRequest(t, http.MethodPost, map[string]any{
		"title":      "  Wedding  ",
		"occasion":   "wedding",
		"event_date": "2026-10-17",
	}, owner.ID, nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var dto wishlistDTO
	decodeBody(t, rec, &dto)
	if dto.Title != "Wedding" || dto.Currency != "EUR" || dto.Slug == "" {
		t.Fatalf("wishlist = %+v", dto)
	}
	if dto.EventDate == nil || *dto.EventDate != "2026-10-17" {
		t.Fatalf("event date = %v", dto.EventDate)
	}
}

func TestWishlistCreateValidation(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")

	tests := []struct {
		name   string
		body   map[string]any
		userID uuid.UUID
		status int
		code   string
	}{
		{"unauthenticated", map[string]any{"title": "x"}, uuid.Nil, http.StatusUnauthorized, "unauthorized"},
		{"missing title", map[string]any{}, owner.ID, http.StatusBadRequest, "bad_request"},
		{"blank title", map[string]any{"title": "   "}, owner.ID, http.StatusBadRequest, "bad_request"},
		{"bad event date", map[string]any{"title": "x", "event_date": "17/10/2026"}, owner.ID, http.StatusBadRequest, "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.WishlistCreate(rec, newRequest(t, http.MethodPost, tt.body, tt.userID, nil))
			wantError(t, rec, tt.status, tt.code)
		})
	}
}

func TestWishlistOwnershipReadsAsNotFound(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")
	stranger := seedUser(t, a, "stranger@example.com")
	wishlist, _ := seedWishlistItem(t, a, owner.ID, 1000)
	params := map[string]string{"wishlistID": wishlist.ID.String()}

	rec := httptest.NewRecorder()
	a.WishlistGet(rec, newRequest(t, http.MethodGet, nil, owner.ID, params))
	if rec.Code != http.StatusOK {
		t.Fatalf("owner read status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.WishlistGet(rec, newRequest(t, http.MethodGet, nil, stranger.ID, params))
	wantError(t, rec, http.StatusNotFound, "not_found")
}

func TestWishlistPublic(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")
	giver := seedUser(t, a, "giver@example.com")
	wishlist, item := seedWishlistItem(t, a, owner.ID, 1000)

	rec := httptest.NewRecorder()
	a.ContributionCreate(rec, newRequest(t, http.MethodPost, map[string]any{"amount": 250}, giver.ID,
		map[string]string{"itemID": item.ID.String()}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed contribution status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.WishlistPublic(rec, newRequest(t, http.MethodGet, nil, uuid.Nil, map[string]string{"slug": wishlist.Slug}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var view struct {
		ID    string    `json:"id"`
		Title string    `json:"title"`
		Items []itemDTO `json:"items"`
	}
	decodeBody(t, rec, &view)
	if view.ID != wishlist.ID.String() || view.Title != wishlist.Title {
		t.Fatalf("view = %+v", view)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(view.Items))
	}
	got := view.Items[0]
	if got.ID != item.ID.String() || got.TotalFunded != 250 || got.ContributorCount != 1 {
		t.Fatalf("item = %+v", got)
	}

	rec = httptest.NewRecorder()
	a.WishlistPublic(rec, newRequest(t, http.MethodGet, nil, uuid.Nil, map[string]string{"slug": "unknown-slug"}))
	wantError(t, rec, http.StatusNotFound, "not_found")
}
