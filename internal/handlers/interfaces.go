package handlers

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handlers

import (
	"context"

	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/services"
)

// BidPlacer places bids
type BidPlacer interface {
	PlaceBid(ctx context.Context, bidder models.Identity, listingID uint, amount string) (*models.Bid, error)
}

// AuctionCloser ends auctions
type AuctionCloser interface {
	CloseAuction(ctx context.Context, actor models.Identity, listingID uint) (*services.ClosedResult, error)
}

// WatchlistManager maintains user watchlists
type WatchlistManager interface {
	Add(ctx context.Context, user models.Identity, listingID uint) (*models.WatchlistEntry, error)
	Remove(ctx context.Context, user models.Identity, listingID uint) error
	List(ctx context.Context, user models.Identity) ([]*models.WatchlistEntry, error)
	IsWatching(ctx context.Context, user models.Identity, listingID uint) (bool, error)
}

// CommentPoster posts comments
type CommentPoster interface {
	AddComment(ctx context.Context, author models.Identity, listingID uint, text string) (*models.Comment, error)
}

// ListingCatalog reads and creates listings
type ListingCatalog interface {
	CreateListing(ctx context.Context, creator models.Identity, input services.CreateListingInput) (*models.Listing, error)
	ListActive(ctx context.Context) ([]*models.Listing, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListByCategory(ctx context.Context, name string) (*models.Category, []*models.Listing, error)
	GetListingDetail(ctx context.Context, listingID uint) (*services.ListingDetail, error)
	ListBids(ctx context.Context, listingID uint) ([]*models.Bid, error)
}

// Authenticator registers and logs in users
type Authenticator interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// AccountManager reads and deletes accounts
type AccountManager interface {
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
	DeleteAccount(ctx context.Context, user models.Identity) error
}
