package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/repository"
	"github.com/Ricozl/commerce/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const maxUsernameLength = 64

// AuthService handles registration and login
type AuthService struct {
	repo *repository.Repository
	cost int
}

// NewAuthService creates a new AuthService
func NewAuthService(repo *repository.Repository) *AuthService {
	return &AuthService{repo: repo, cost: bcrypt.DefaultCost}
}

// RegisterInput holds the registration form
type RegisterInput struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// Register creates an account
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || utf8.RuneCountInString(username) > maxUsernameLength || username == models.NoWinner {
		return nil, fmt.Errorf("%w: username must be 1-%d characters", auctionerrors.ErrInvalidUser, maxUsernameLength)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", auctionerrors.ErrInvalidUser)
	}
	if input.Password != input.Confirmation {
		return nil, auctionerrors.ErrPasswordMismatch
	}

	email := strings.TrimSpace(input.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("%w: invalid email address", auctionerrors.ErrInvalidUser)
		}
	}

	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, auctionerrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, auctionerrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.InfoContext(ctx, "New user registered", map[string]any{"user_id": user.ID, "username": user.Username})
	return user, nil
}

// Login checks credentials and returns the matching user
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, auctionerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, auctionerrors.ErrInvalidCredentials
	}

	utils.InfoContext(ctx, "User logged in", map[string]any{"user_id": user.ID})
	return user, nil
}
