package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Gaetan-M/SocialWishlist/internal/auth"
	"github.com/Gaetan-M/SocialWishlist/internal/domain"
	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
	"github.com/Gaetan-M/SocialWishlist/internal/realtime"
)

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Logger        zerolog.Logger
	Users         domain.UserRepository
	Wishlists     domain.WishlistRepository
	Items         domain.ItemRepository
	Contributions domain.ContributionRepository
	Ledger        *ledger.Service
	Hub           *realtime.Hub
	Tokens        *auth.TokenIssuer
	TokenExpiry   time.Duration
	SecureCookies bool
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
