package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/shopspring/decimal"
)

const (
	maxTitleLength       = 64
	maxDescriptionLength = 512
	maxImageURLLength    = 1024
)

// ListingService handles the listing catalogue
type ListingService struct {
	repo *repository.Repository
}

// NewListingService creates a new ListingService
func NewListingService(repo *repository.Repository) *ListingService {
	return &ListingService{repo: repo}
}

// CreateListingInput holds the fields of a new listing
type CreateListingInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartBid    string `json:"start_bid"`
	ImageURL    string `json:"image_url"`
	CategoryID  uint   `json:"category_id"`
}

// ListingDetail is a listing with everything its page shows
type ListingDetail struct {
	Listing      *models.Listing
	CurrentPrice decimal.Decimal
	BidCount     int64
	Comments     []*models.Comment
}

// CreateListing validates the input and creates an active listing
func (s *ListingService) CreateListing(ctx context.Context, creator models.Identity, input CreateListingInput) (*models.Listing, error) {
	if creator.IsZero() {
		return nil, auctionerrors.ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title must be 1-%d characters", auctionerrors.ErrInvalidListing, maxTitleLength)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" || utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description must be 1-%d characters", auctionerrors.ErrInvalidListing, maxDescriptionLength)
	}

	startBid, err := ParseAmount(input.StartBid)
	if err != nil {
		return nil, err
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL != "" {
		u, err := url.ParseRequestURI(imageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(imageURL) > maxImageURLLength {
			return nil, fmt.Errorf("%w: image url must be an http(s) url", auctionerrors.ErrInvalidListing)
		}
	}

	if _, err := s.repo.GetCategoryByID(ctx, input.CategoryID); err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: unknown category", auctionerrors.ErrInvalidListing)
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	listing := &models.Listing{
		Title:       title,
		Description: description,
		StartBid:    startBid,
		ImageURL:    imageURL,
		CategoryID:  input.CategoryID,
		IsActive:    true,
		CreatorID:   creator.UserID,
	}
	if err := s.repo.CreateListing(ctx, listing); err != nil {
		if repository.IsMissingReference(err) {
			return nil, auctionerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	utils.InfoContext(ctx, "Listing created", map[string]any{
		"listing_id": listing.ID,
		"creator":    creator.Username,
		"start_bid":  startBid.StringFixed(2),
	})
	return listing, nil
}

// ListActive returns the active listings ordered by title
func (s *ListingService) ListActive(ctx context.Context) ([]*models.Listing, error) {
	listings, err := s.repo.ListActiveListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// ListCategories returns all categories ordered by name
func (s *ListingService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByCategory returns the active listings of the named category
func (s *ListingService) ListByCategory(ctx context.Context, name string) (*models.Category, []*models.Listing, error) {
	category, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, auctionerrors.ErrCategoryNotFound
		}
		return nil, nil, fmt.Errorf("failed to load category: %w", err)
	}

	listings, err := s.repo.ListActiveListingsByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return category, listings, nil
}

// GetListingDetail loads a listing with its price, creator, category and comments
func (s *ListingService) GetListingDetail(ctx context.Context, listingID uint) (*ListingDetail, error) {
	listing, err := s.repo.GetListingByID(ctx, listingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, auctionerrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}

	bidCount, err := s.repo.CountListingBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}

	comments, err := s.repo.GetListingComments(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return &ListingDetail{
		Listing:      listing,
		CurrentPrice: listing.CurrentPrice(),
		BidCount:     bidCount,
		Comments:     comments,
	}, nil
}

// ListBids returns a listing's bid history, highest first
func (s *ListingService) ListBids(ctx context.Context, listingID uint) ([]*models.Bid, error) {
	if _, err := s.repo.GetListingByID(ctx, listingID); err != nil {
		if repository.IsNotFound(err) {
			return nil, auctionerrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}

	bids, err := s.repo.GetListingBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bids: %w", err)
	}
	return bids, nil
}
