package handlers

import (
	"net/http"
	"time"

	"github.com/Ricozl/commerce/internal/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the handlers and settings the router is built from
type RouterConfig struct {
	Auth           *AuthHandler
	Listings       *ListingHandler
	Watchlist      *WatchlistHandler
	Comments       *CommentHandler
	Feed           *FeedHandler
	Limiter        *ActionLimiter
	AllowedOrigins []string
}

// NewRouter wires all routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware)

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", requestIDHeader},
			ExposeHeaders:    []string{"Content-Length", requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public routes see the viewer when a session is present
	public := router.Group("/")
	public.Use(auth.OptionalAuth())
	{
		public.POST("/auth/register", cfg.Auth.Register)
		public.POST("/auth/login", cfg.Auth.Login)
		public.POST("/auth/logout", cfg.Auth.Logout)

		public.GET("/api/listings", cfg.Listings.Index)
		public.GET("/api/listings/:id", cfg.Listings.Detail)
		public.GET("/api/listings/:id/bids", cfg.Listings.Bids)
		public.GET("/api/categories", cfg.Listings.Categories)
		public.GET("/api/categories/:name/listings", cfg.Listings.CategoryListings)

		if cfg.Feed != nil {
			public.GET("/ws/listings/:id", cfg.Feed.Subscribe)
		}
	}

	authProtected := router.Group("/auth")
	authProtected.Use(auth.AuthMiddleware())
	{
		authProtected.GET("/me", cfg.Auth.Me)
		authProtected.DELETE("/me", cfg.Auth.DeleteMe)
	}

	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		api.POST("/listings", cfg.Listings.Create)
		api.GET("/watchlist", cfg.Watchlist.List)

		actions := api.Group("")
		if cfg.Limiter != nil {
			actions.Use(cfg.Limiter.Middleware())
		}
		actions.POST("/listings/:id", cfg.Listings.Action)
		actions.POST("/comments", cfg.Comments.Post)
	}

	return router
}
