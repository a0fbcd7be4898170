package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	accountdomain "github.com/stockflow/backend/services/account/domain"
	"github.com/stockflow/backend/services/account/domain/models"
	"github.com/stockflow/backend/services/account/domain/repositories"
)

// AccountService handles registration, credential checks and profile updates.
type AccountService struct {
	repo repositories.UserRepository
}

// NewAccountService returns an AccountService wired with the given repository.
func NewAccountService(repo repositories.UserRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new account with a hashed password.
func (s *AccountService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	user, err := models.NewUser(email, password, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", accountdomain.ErrInvalidUser, err)
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, accountdomain.ErrUserNotFound) {
			return nil, accountdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if !user.CheckPassword(password) {
		return nil, accountdomain.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the user's profile.
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateName changes the display name and returns the updated profile.
func (s *AccountService) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := user.Rename(name); err != nil {
		return nil, fmt.Errorf("%w: %w", accountdomain.ErrInvalidUser, err)
	}
	if err := s.repo.UpdateName(ctx, id, user.Name); err != nil {
		return nil, fmt.Errorf("update user name: %w", err)
	}
	return user, nil
}
