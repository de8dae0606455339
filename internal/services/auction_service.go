package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/utils"
)

// AuctionService closes auctions and resolves their winners
type AuctionService struct {
	repo   *repository.Repository
	locks  *KeyedLocks
	events EventPublisher
}

// NewAuctionService creates a new AuctionService
func NewAuctionService(repo *repository.Repository, locks *KeyedLocks, events EventPublisher) *AuctionService {
	return &AuctionService{
		repo:   repo,
		locks:  locks,
		events: events,
	}
}

// ClosedResult describes a closed auction. WinningBid is nil when nobody bid.
type ClosedResult struct {
	ListingID  uint        `json:"listing_id"`
	Winner     string      `json:"winner"`
	WinningBid *models.Bid `json:"winning_bid,omitempty"`
}

// SelectWinningBid returns the highest bid, the earliest one among equal amounts.
// It returns nil for no bids.
func SelectWinningBid(bids []*models.Bid) *models.Bid {
	var best *models.Bid
	for _, bid := range bids {
		if best == nil {
			best = bid
			continue
		}
		cmp := bid.Amount.Cmp(best.Amount)
		if cmp > 0 || (cmp == 0 && bid.ID < best.ID) {
			best = bid
		}
	}
	return best
}

// CloseAuction ends the auction on a listing. Only the creator may close it,
// and a listing closes at most once.
func (s *AuctionService) CloseAuction(ctx context.Context, actor models.Identity, listingID uint) (*ClosedResult, error) {
	if actor.IsZero() {
		return nil, auctionerrors.ErrUnauthorized
	}

	unlock := s.locks.Lock(listingLockKey(listingID))
	defer unlock()

	var result *ClosedResult
	err := retryOnConflict(ctx, "close auction", func() error {
		var txErr error
		result, txErr = s.closeAuction(ctx, actor, listingID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	fields := map[string]any{"listing_id": listingID, "winner": result.Winner}
	if result.WinningBid != nil {
		fields["amount"] = result.WinningBid.Amount.StringFixed(2)
	}
	utils.InfoContext(ctx, "Auction closed", fields)

	event := ListingEvent{
		Type:      EventAuctionClosed,
		ListingID: listingID,
		Winner:    result.Winner,
		At:        time.Now().UTC(),
	}
	if result.WinningBid != nil {
		event.Amount = result.WinningBid.Amount.StringFixed(2)
	}
	publish(s.events, event)

	return result, nil
}

func (s *AuctionService) closeAuction(ctx context.Context, actor models.Identity, listingID uint) (*ClosedResult, error) {
	var result *ClosedResult

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		listing, err := tx.GetListingForUpdate(ctx, listingID)
		if err != nil {
			if repository.IsNotFound(err) {
				return auctionerrors.ErrListingNotFound
			}
			return fmt.Errorf("failed to load listing: %w", err)
		}

		if !listing.IsActive {
			return auctionerrors.ErrAlreadyClosed
		}
		if listing.CreatorID != actor.UserID {
			return auctionerrors.ErrNotListingOwner
		}

		bids, err := tx.GetListingBids(ctx, listingID)
		if err != nil {
			return fmt.Errorf("failed to load bids: %w", err)
		}

		winning := SelectWinningBid(bids)
		winner := models.NoWinner
		if winning != nil {
			if winning.Bidder == nil {
				return fmt.Errorf("winning bid %d has no bidder", winning.ID)
			}
			winner = winning.Bidder.Username
		}

		if err := tx.CloseListing(ctx, listingID, winner); err != nil {
			if errors.Is(err, repository.ErrNotActive) {
				return auctionerrors.ErrAlreadyClosed
			}
			return fmt.Errorf("failed to close listing: %w", err)
		}

		result = &ClosedResult{
			ListingID:  listingID,
			Winner:     winner,
			WinningBid: winning,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
