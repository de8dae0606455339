package repository

import (
	"context"
	"errors"

	"github.com/Ricozl/commerce/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateListing inserts a new listing
func (r *Repository) CreateListing(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// GetListingByID retrieves a listing with its creator and category
func (r *Repository) GetListingByID(ctx context.Context, listingID uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Category").
		Where("id = ?", listingID).
		First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetListingForUpdate loads a listing and row-locks it for the rest of the transaction
func (r *Repository) GetListingForUpdate(ctx context.Context, listingID uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.lockForUpdate(r.db.WithContext(ctx)).
		Where("id = ?", listingID).
		First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListActiveListings returns active listings ordered by title
func (r *Repository) ListActiveListings(ctx context.Context) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("title ASC").
		Order("id ASC").
		Find(&listings).Error
	return listings, err
}

// ListActiveListingsByCategory returns active listings in one category ordered by title
func (r *Repository) ListActiveListingsByCategory(ctx context.Context, categoryID uint) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ? AND category_id = ?", true, categoryID).
		Order("title ASC").
		Order("id ASC").
		Find(&listings).Error
	return listings, err
}

// SetHighestBid updates the cached highest bid
func (r *Repository) SetHighestBid(ctx context.Context, listingID uint, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", listingID).
		Update("highest_bid", amount).Error
}

// ErrNotActive is returned by CloseListing when the listing was already inactive
var ErrNotActive = errors.New("listing not active")

// CloseListing flips an active listing to inactive and records the winner.
// The update only matches active rows so a listing closes at most once.
func (r *Repository) CloseListing(ctx context.Context, listingID uint, winner string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ? AND is_active = ?", listingID, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"winner":    winner,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotActive
	}
	return nil
}

// IsNotFound reports whether err is a missing-record error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsMissingReference reports whether an insert pointed at a row that does not
// exist. Requires TranslateError on the connection.
func IsMissingReference(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
