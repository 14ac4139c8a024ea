package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Gaetan-M/SocialWishlist/internal/realtime"
)

// Events opens the live-update stream. Repeatable ?wishlist= parameters
// pick the wishlist topics to watch; membership lasts for the lifetime
// of the connection. A viewer that reconnects re-fetches wishlist state
// out of band, so missed events are harmless.
func (a *App) Events(w http.ResponseWriter, r *http.Request) {
	client := a.Hub.NewClient()
	joined := 0
	for _, raw := range r.URL.Query()["wishlist"] {
		wishlistID, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		a.Hub.Join(client, realtime.WishlistTopic(wishlistID))
		joined++
	}
	if joined == 0 {
		a.Hub.CloseClient(client)
		a.error(w, r, http.StatusBadRequest, "bad_request")
		return
	}
	defer a.Hub.CloseClient(client)

	a.Hub.ServeSSE(w, r, client)
}
