package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Gaetan-M/SocialWishlist/internal/adapter/repo"
	"github.com/Gaetan-M/SocialWishlist/internal/auth"
	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
	"github.com/Gaetan-M/SocialWishlist/internal/middleware"
	"github.com/Gaetan-M/SocialWishlist/internal/realtime"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	items := repo.NewItemRepositoryMem()
	contributions := repo.NewContributionRepositoryMem()
	hub := realtime.NewHub(zerolog.Nop())
	return &App{
		Logger:        zerolog.Nop(),
		Users:         repo.NewUserRepositoryMem(),
		Wishlists:     repo.NewWishlistRepositoryMem(),
		Items:         items,
		Contributions: contributions,
		Ledger:        ledger.NewService(items, contributions, realtime.NewLedgerPublisher(hub), zerolog.Nop()),
		Hub:           hub,
		Tokens:        auth.NewTokenIssuer("test-secret", time.Hour),
		TokenExpiry:   time.Hour,
	}
}

func seedUser(t *testing.T, a *App, email string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &domain.User{Email: email, PasswordHash: hash}
	if err := a.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedWishlistItem(t *testing.T, a *App, ownerID uuid.UUID, price int64) (*domain.Wishlist, *domain.Item) {
	t.Helper()
	wishlist := &domain.Wishlist{UserID: ownerID, Title: "birthday", Slug: "share-" + uuid.NewString(), Currency: "EUR"}
	if err := a.Wishlists.Create(context.Background(), wishlist); err != nil {
		t.Fatalf("create wishlist: %v", err)
	}
	item := &domain.Item{WishlistID: wishlist.ID, Name: "record player", Price: price}
	if err := a.Items.Create(context.Background(), item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	return wishlist, item
}

// newRequest builds a JSON request; userID attaches the authenticated
// user and params become chi URL params.
func newRequest(t *testing.T, method string, body any, userID uuid.UUID, params map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/", &buf)
	ctx := req.Context()
	if userID != uuid.Nil {
		ctx = middleware.ContextWithUserID(ctx, userID)
	}
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	var resp errorResponse
	decodeBody(t, rec, &resp)
	if resp.Error != code {
		t.Fatalf("error code = %q, want %q", resp.Error, code)
	}
	if resp.Message == "" {
		t.Fatalf("error message is empty for code %q", code)
	}
}
