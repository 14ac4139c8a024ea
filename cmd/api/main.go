package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Gaetan-M/SocialWishlist/internal/adapter/repo"
	"github.com/Gaetan-M/SocialWishlist/internal/auth"
	"github.com/Gaetan-M/SocialWishlist/internal/http/handlers"
	"github.com/Gaetan-M/SocialWishlist/internal/http/httpapi"
	"github.com/Gaetan-M/SocialWishlist/internal/infra"
	"github.com/Gaetan-M/SocialWishlist/internal/ledger"
	"github.com/Gaetan-M/SocialWishlist/internal/realtime"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	sqlRunner := infra.NewSQLRunner(pool, logger)
	if err := infra.Migrate(ctx, sqlRunner); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	hub := realtime.NewHub(logger)
	items := repo.NewItemRepository(sqlRunner)
	contributions := repo.NewContributionRepository(sqlRunner)

	app := &handlers.App{
		Logger:        logger,
		Users:         repo.NewUserRepository(sqlRunner),
		Wishlists:     repo.NewWishlistRepository(sqlRunner),
		Items:         items,
		Contributions: contributions,
		Ledger:        ledger.NewService(items, contributions, realtime.NewLedgerPublisher(hub), logger),
		Hub:           hub,
		Tokens:        auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry),
		TokenExpiry:   cfg.JWTExpiry,
		SecureCookies: cfg.AppEnv != "development",
	}

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
