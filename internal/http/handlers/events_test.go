package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
	"github.com/Gaetan-M/SocialWishlist/internal/realtime"
)

func TestEventsRequiresAWishlistTopic(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/api/events", "/api/events?wishlist=not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		a.Events(rec, req)
		wantError(t, rec, http.StatusBadRequest, "bad_request")
	}
}

func TestEventsStreamsItemUpdates(t *testing.T) {
	a := newTestApp(t)
	wishlistID := uuid.New()
	itemID := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events?wishlist="+wishlistID.String(), nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		a.Events(rec, req)
		close(done)
	}()

	// Wait for the subscription, publish, let the loop drain, then end
	// the request.
	time.Sleep(50 * time.Millisecond)
	realtime.NewLedgerPublisher(a.Hub).PublishItemUpdate(wishlistID, itemID, ledger.FundingSnapshot{
		TotalFunded:      500,
		ContributorCount: 1,
		Status:           ledger.StatusPartiallyFunded,
	})
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stream did not end after context cancel")
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event: item_updated") {
		t.Fatalf("body has no item_updated event: %q", body)
	}
	if !strings.Contains(body, itemID.String()) {
		t.Fatalf("body does not carry the item id: %q", body)
	}
}
