package repository

import (
	"context"

	"github.com/Ricozl/commerce/internal/models"
)

// CreateBid appends a bid
func (r *Repository) CreateBid(ctx context.Context, bid *models.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

// GetListingBids returns the bids on a listing, highest first, earliest first among equals
func (r *Repository) GetListingBids(ctx context.Context, listingID uint) ([]*models.Bid, error) {
	var bids []*models.Bid
	err := r.db.WithContext(ctx).
		Preload("Bidder").
		Where("listing_id = ?", listingID).
		Order("amount DESC").
		Order("id ASC").
		Find(&bids).Error
	return bids, err
}

// CountListingBids counts the bids recorded for a listing
func (r *Repository) CountListingBids(ctx context.Context, listingID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error
	return count, err
}
