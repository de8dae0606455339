package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
)

const maxCommentLength = 512

// CommentService posts comments on listings
type CommentService struct {
	repo *repository.Repository
}

func NewCommentService(repo *repository.Repository) *CommentService {
	return &CommentService{repo: repo}
}

// AddComment posts text on a listing. The author's current username is
// copied into the comment.
func (s *CommentService) AddComment(ctx context.Context, author models.Identity, listingID uint, text string) (*models.Comment, error) {
	if author.IsZero() {
		return nil, auctionerrors.ErrUnauthorized
	}

	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment must be 1-%d characters", auctionerrors.ErrInvalidComment, maxCommentLength)
	}

	if _, err := s.repo.GetListingByID(ctx, listingID); err != nil {
		if repository.IsNotFound(err) {
			return nil, auctionerrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}

	commenter := author.Username
	if commenter == "" {
		commenter = "Anonymous"
	}

	comment := &models.Comment{
		ListingID: listingID,
		AuthorID:  author.UserID,
		Commenter: commenter,
		Text:      text,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		if repository.IsMissingReference(err) {
			return nil, auctionerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}
