package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"

	"gorm.io/gorm"
)

// WatchlistService tracks which listings a user is watching
type WatchlistService struct {
	repo  *repository.Repository
	locks *KeyedLocks
}

// NewWatchlistService creates a new WatchlistService
func NewWatchlistService(repo *repository.Repository, locks *KeyedLocks) *WatchlistService {
	return &WatchlistService{repo: repo, locks: locks}
}

func watchLockKey(userID, listingID uint) string {
	return fmt.Sprintf("watch:%d:%d", userID, listingID)
}

// Add starts watching a listing
func (s *WatchlistService) Add(ctx context.Context, user models.Identity, listingID uint) (*models.WatchlistEntry, error) {
	if user.IsZero() {
		return nil, auctionerrors.ErrUnauthorized
	}

	unlock := s.locks.Lock(watchLockKey(user.UserID, listingID))
	defer unlock()

	var entry *models.WatchlistEntry
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.GetListingByID(ctx, listingID); err != nil {
			if repository.IsNotFound(err) {
				return auctionerrors.ErrListingNotFound
			}
			return fmt.Errorf("failed to load listing: %w", err)
		}

		_, err := tx.GetActiveWatchlistEntry(ctx, user.UserID, listingID)
		if err == nil {
			return auctionerrors.ErrAlreadyWatching
		}
		if !repository.IsNotFound(err) {
			return fmt.Errorf("failed to check watchlist: %w", err)
		}

		entry = &models.WatchlistEntry{ListingID: listingID, UserID: user.UserID}
		if err := tx.CreateWatchlistEntry(ctx, entry); err != nil {
			// the partial unique index caught a writer from another process
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return auctionerrors.ErrAlreadyWatching
			}
			if repository.IsMissingReference(err) {
				return auctionerrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to add to watchlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove stops watching a listing. The row is kept and marked inactive.
func (s *WatchlistService) Remove(ctx context.Context, user models.Identity, listingID uint) error {
	if user.IsZero() {
		return auctionerrors.ErrUnauthorized
	}

	unlock := s.locks.Lock(watchLockKey(user.UserID, listingID))
	defer unlock()

	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		entry, err := tx.GetActiveWatchlistEntry(ctx, user.UserID, listingID)
		if err != nil {
			if repository.IsNotFound(err) {
				return auctionerrors.ErrNotWatching
			}
			return fmt.Errorf("failed to check watchlist: %w", err)
		}

		if err := tx.DeactivateWatchlistEntry(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to remove from watchlist: %w", err)
		}
		return nil
	})
}

// List returns the user's active entries ordered by listing
func (s *WatchlistService) List(ctx context.Context, user models.Identity) ([]*models.WatchlistEntry, error) {
	if user.IsZero() {
		return nil, auctionerrors.ErrUnauthorized
	}

	entries, err := s.repo.ListActiveWatchlist(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return entries, nil
}

// IsWatching reports whether the user has an active entry for the listing
func (s *WatchlistService) IsWatching(ctx context.Context, user models.Identity, listingID uint) (bool, error) {
	if user.IsZero() {
		return false, nil
	}
	_, err := s.repo.GetActiveWatchlistEntry(ctx, user.UserID, listingID)
	if err == nil {
		return true, nil
	}
	if repository.IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check watchlist: %w", err)
}
