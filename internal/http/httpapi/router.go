package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Gaetan-M/SocialWishlist/internal/http/handlers"
	"github.com/Gaetan-M/SocialWishlist/internal/infra"
	"github.com/Gaetan-M/SocialWishlist/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(log),
		chimw.Recoverer,
		middleware.CORS(cfg.CORSOrigins),
		middleware.Locale(cfg.DefaultLocale),
	)

	requireAuth := middleware.Auth(app.Tokens)
	loginLimit := middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)

	r.Get("/api/health", app.Health)
	r.Get("/api/events", app.Events)

	r.Route("/api/auth", func(r chi.Router) {
		r.With(loginLimit).Post("/register", app.Register)
		r.With(loginLimit).Post("/login", app.Login)
		r.Post("/logout", app.Logout)
		r.With(requireAuth).Get("/me", app.Me)
	})

	r.Route("/api/wishlists", func(r chi.Router) {
		r.Get("/public/{slug}", app.WishlistPublic)

		r.With(requireAuth).Post("/", app.WishlistCreate)
		r.With(requireAuth).Get("/", app.WishlistList)

		r.Route("/{wishlistID}", func(r chi.Router) {
			r.Get("/items", app.ItemList)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/", app.WishlistGet)
				r.Put("/", app.WishlistUpdate)
				r.Delete("/", app.WishlistDelete)
				r.Post("/items", app.ItemCreate)
				r.Put("/items/{itemID}", app.ItemUpdate)
				r.Delete("/items/{itemID}", app.ItemDelete)
			})
		})
	})

	r.Route("/api/items/{itemID}/contributions", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", app.ContributionCreate)
		r.Post("/reserve", app.ContributionReserve)
		r.Put("/", app.ContributionUpdate)
		r.Get("/mine", app.ContributionMine)
	})

	return r
}
