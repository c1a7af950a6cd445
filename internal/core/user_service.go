package core

import (
	"context"
	"errors"
	"fmt"

	"bookorbit-backend-go/internal/db"
	"bookorbit-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpsertUser(ctx context.Context, req models.UpsertUserRequest) (*models.User, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrInvalidInput)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	}
	stored, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %q: %w", req.Email, err)
	}
	return stored, nil
}

// GetRole defaults to RoleUser when no profile document exists. Absence is not
// an error: a caller authenticated by the identity provider may not have hit
// the upsert endpoint yet.
func (s *userService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.RoleUser, nil
		}
		return "", fmt.Errorf("failed to get role for %q: %w", email, err)
	}
	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}
