package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
)

func TestItemCreate(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")
	wishlist, _ := seedWishlistItem(t, a, owner.ID, 1000)
	params := map[string]string{"wishlistID": wishlist.ID.String()}

	rec := httptest.NewRecorder()
	a.ItemCreate(rec, newRequest(t, http.MethodPost, map[string]any{
		"name":  "chef's knife",
		"price": 8900,
	}, owner.ID, params))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var dto itemDTO
	decodeBody(t, rec, &dto)
	if dto.Name != "chef's knife" || dto.Price != 8900 || dto.Status != ledger.StatusAvailable {
		t.Fatalf("item = %+v", dto)
	}

	rec = httptest.NewRecorder()
	a.ItemCreate(rec, newRequest(t, http.MethodPost, map[string]any{"name": "free", "price": 0}, owner.ID, params))
	wantError(t, rec, http.StatusBadRequest, "bad_request")
}

func TestItemUpdatePriceLockedOnceFunded(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")
	giver := seedUser(t, a, "giver@example.com")
	wishlist, item := seedWishlistItem(t, a, owner.ID, 1000)
	params := map[string]string{"wishlistID": wishlist.ID.String(), "itemID": item.ID.String()}

	rec := httptest.NewRecorder()
	a.ItemUpdate(rec, newRequest(t, http.MethodPut, map[string]any{"price": 1500}, owner.ID, params))
	if rec.Code != http.StatusOK {
		t.Fatalf("price change on unfunded item status = %d, body %s", rec.Code, rec.Body.String())
	}
	var dto itemDTO
	decodeBody(t, rec, &dto)
	if dto.Price != 1500 {
		t.Fatalf("price = %d, want 1500", dto.Price)
	}

	rec = httptest.NewRecorder()
	a.ContributionCreate(rec, newRequest(t, http.MethodPost, map[string]any{"amount": 100}, giver.ID,
		map[string]string{"itemID": item.ID.String()}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed contribution status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.ItemUpdate(rec, newRequest(t, http.MethodPut, map[string]any{"price": 2000}, owner.ID, params))
	wantError(t, rec, http.StatusConflict, "price_locked")

	// Renaming stays allowed while funded.
	rec = httptest.NewRecorder()
	a.ItemUpdate(rec, newRequest(t, http.MethodPut, map[string]any{"name": "renamed"}, owner.ID, params))
	if rec.Code != http.StatusOK {
		t.Fatalf("rename status = %d, body %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &dto)
	if dto.Name != "renamed" || dto.TotalFunded != 100 {
		t.Fatalf("item = %+v", dto)
	}
}

func TestItemListPublic(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")
	wishlist, item := seedWishlistItem(t, a, owner.ID, 1000)

	rec := httptest.NewRecorder()
	a.ItemList(rec, newRequest(t, http.MethodGet, nil, uuid.Nil,
		map[string]string{"wishlistID": wishlist.ID.String()}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []itemDTO
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0].ID != item.ID.String() {
		t.Fatalf("items = %+v", items)
	}
}

func TestItemDelete(t *testing.T) {
	a := newTestApp(t)
	owner := seedUser(t, a, "owner@example.com")
	wishlist, item := seedWishlistItem(t, a, owner.ID, 1000)
	params := map[string]string{"wishlistID": wishlist.ID.String(), "itemID": item.ID.String()}

	rec := httptest.NewRecorder()
	a.ItemDelete(rec, newRequest(t, http.MethodDelete, nil, owner.ID, params))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.ItemDelete(rec, newRequest(t, http.MethodDelete, nil, owner.ID, params))
	wantError(t, rec, http.StatusNotFound, "not_found")
}
