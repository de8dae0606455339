package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ricozl/commerce/internal/auth"
	"github.com/Ricozl/commerce/internal/config"
	"github.com/Ricozl/commerce/internal/database"
	"github.com/Ricozl/commerce/internal/handlers"
	"github.com/Ricozl/commerce/internal/realtime"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/services"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.Log.Level, cfg.Log.JSON)

	auth.InitJWT(cfg.App.JWTSecret, cfg.App.SessionTTL)

	if err := database.Connect(cfg); err != nil {
		utils.Fatal("Failed to connect to database", map[string]any{"error": err.Error()})
	}

	if err := database.AutoMigrate(); err != nil {
		utils.Fatal("Failed to run migrations", map[string]any{"error": err.Error()})
	}

	if err := database.SeedCategories(database.GetDB(), cfg.App.SeedCategories); err != nil {
		utils.Fatal("Failed to seed categories", map[string]any{"error": err.Error()})
	}

	repo := repository.NewRepository(database.GetDB())
	locks := services.NewKeyedLocks()
	hub := realtime.NewHub(originChecker(cfg.Server.AllowedOrigins))

	authService := services.NewAuthService(repo)
	userService := services.NewUserService(repo)
	listingService := services.NewListingService(repo)
	bidService := services.NewBidService(repo, locks, hub)
	auctionService := services.NewAuctionService(repo, locks, hub)
	watchlistService := services.NewWatchlistService(repo, locks)
	commentService := services.NewCommentService(repo)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:      handlers.NewAuthHandler(authService, userService, os.Getenv("SECURE_COOKIES") == "true"),
		Listings:  handlers.NewListingHandler(listingService, bidService, auctionService, watchlistService, commentService),
		Watchlist: handlers.NewWatchlistHandler(watchlistService),
		Comments:  handlers.NewCommentHandler(commentService),
		Feed:      handlers.NewFeedHandler(hub, listingService),
		Limiter:   handlers.NewActionLimiter(cfg.App.ActionRatePerSecond, cfg.App.ActionBurst),

		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("Server starting", map[string]any{"port": cfg.Server.Port})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Fatal("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	utils.Info("Server exited", nil)
}

// originChecker accepts websocket upgrades from the configured origins and
// from clients that send no Origin header.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		set[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
