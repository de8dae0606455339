package repository

import (
	"context"

	"github.com/Ricozl/commerce/internal/models"
)

// GetActiveWatchlistEntry returns the active entry for a (user, listing) pair
func (r *Repository) GetActiveWatchlistEntry(ctx context.Context, userID, listingID uint) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ? AND is_active = ?", userID, listingID, true).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateWatchlistEntry inserts an active watchlist row
func (r *Repository) CreateWatchlistEntry(ctx context.Context, entry *models.WatchlistEntry) error {
	entry.IsActive = true
	return r.db.WithContext(ctx).Create(entry).Error
}

// DeactivateWatchlistEntry soft-deletes a watchlist row
func (r *Repository) DeactivateWatchlistEntry(ctx context.Context, entryID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("id = ?", entryID).
		Update("is_active", false).Error
}

// ListActiveWatchlist returns a user's active entries with their listings, ordered by listing
func (r *Repository) ListActiveWatchlist(ctx context.Context, userID uint) ([]*models.WatchlistEntry, error) {
	var entries []*models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("listing_id ASC").
		Find(&entries).Error
	return entries, err
}

// CountWatchlistRows counts the rows for a pair, and how many of them are active
func (r *Repository) CountWatchlistRows(ctx context.Context, userID, listingID uint) (total int64, active int64, err error) {
	err = r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND listing_id = ? AND is_active = ?", userID, listingID, true).
		Count(&active).Error
	return total, active, err
}
