package services

import (
	"context"
	"fmt"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/utils"
)

// UserService handles user-related business logic
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new UserService
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, auctionerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the user along with their listings, bids, comments
// and watchlist. Winner names already frozen into closed listings remain.
func (s *UserService) DeleteAccount(ctx context.Context, user models.Identity) error {
	if user.IsZero() {
		return auctionerrors.ErrUnauthorized
	}

	deleted, err := s.repo.DeleteUser(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == 0 {
		return auctionerrors.ErrUserNotFound
	}

	utils.InfoContext(ctx, "User deleted", map[string]any{"user_id": user.UserID})
	return nil
}
