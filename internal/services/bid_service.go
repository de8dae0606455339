package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/shopspring/decimal"
)

// BidService places bids on listings
type BidService struct {
	repo   *repository.Repository
	locks  *KeyedLocks
	events EventPublisher
}

// NewBidService creates a new BidService. locks must be shared with the
// AuctionService so bids and closes on one listing serialize.
func NewBidService(repo *repository.Repository, locks *KeyedLocks, events EventPublisher) *BidService {
	return &BidService{
		repo:   repo,
		locks:  locks,
		events: events,
	}
}

func listingLockKey(listingID uint) string {
	return fmt.Sprintf("listing:%d", listingID)
}

// PlaceBid validates and records a bid. The bid row and the listing's cached
// highest bid are written in one transaction while the listing is locked.
func (s *BidService) PlaceBid(ctx context.Context, bidder models.Identity, listingID uint, rawAmount string) (*models.Bid, error) {
	if bidder.IsZero() {
		return nil, auctionerrors.ErrUnauthorized
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(listingLockKey(listingID))
	defer unlock()

	var bid *models.Bid
	err = retryOnConflict(ctx, "place bid", func() error {
		var txErr error
		bid, txErr = s.placeBid(ctx, bidder, listingID, amount)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	utils.InfoContext(ctx, "Bid placed", map[string]any{
		"listing_id": listingID,
		"bidder":     bidder.Username,
		"amount":     amount.StringFixed(2),
	})

	publish(s.events, ListingEvent{
		Type:      EventBidPlaced,
		ListingID: listingID,
		Amount:    amount.StringFixed(2),
		Bidder:    bidder.Username,
		At:        bid.CreatedAt,
	})

	return bid, nil
}

func (s *BidService) placeBid(ctx context.Context, bidder models.Identity, listingID uint, amount decimal.Decimal) (*models.Bid, error) {
	var bid *models.Bid

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		listing, err := tx.GetListingForUpdate(ctx, listingID)
		if err != nil {
			if repository.IsNotFound(err) {
				return auctionerrors.ErrListingNotFound
			}
			return fmt.Errorf("failed to load listing: %w", err)
		}

		if !listing.IsActive {
			return auctionerrors.ErrListingInactive
		}

		eval := Evaluate(listing.CurrentPrice(), amount)
		if !eval.Accepted {
			return &auctionerrors.BidRejectedError{CurrentPrice: eval.NewPrice}
		}

		bid = &models.Bid{
			Amount:    amount,
			ListingID: listingID,
			BidderID:  bidder.UserID,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.CreateBid(ctx, bid); err != nil {
			// the listing row is locked, so the bidder is what went missing
			if repository.IsMissingReference(err) {
				return auctionerrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to create bid: %w", err)
		}

		if err := tx.SetHighestBid(ctx, listingID, eval.NewPrice); err != nil {
			return fmt.Errorf("failed to update highest bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}
