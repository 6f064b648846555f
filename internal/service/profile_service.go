package service

import (
	"context"
	"fmt"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/repository"
)

// profileService implements ProfileService interface
type profileService struct {
	users repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

// Update applies the mutable profile fields to an existing user
func (s *profileService) Update(ctx context.Context, id string, updated *domain.User) (*domain.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = updated.Name
	existing.Phone = updated.Phone
	existing.Email = updated.Email

	if err := s.users.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return existing, nil
}

// Delete removes a user profile by ID
func (s *profileService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
