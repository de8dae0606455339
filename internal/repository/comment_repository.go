package repository

import (
	"context"

	"github.com/Ricozl/commerce/internal/models"
)

// CreateComment appends a comment
func (r *Repository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetListingComments returns the comments on a listing, newest first
func (r *Repository) GetListingComments(ctx context.Context, listingID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&comments).Error
	return comments, err
}
