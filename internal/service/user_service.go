// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/repository"
)

const (
	maxDisplayNameLen = 100
	maxBioLen         = 500
)

// UserService implements profile reads and updates.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a profile update request. Image is nil when the
// request did not include a new avatar.
type UpdateProfileInput struct {
	UserID      uint
	DisplayName *string
	Bio         *string
	Image       *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile writes the mutable profile fields for the given user. The
// update is scoped to the authenticated user's row; a vanished row surfaces
// as NotFound rather than a crash.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.DisplayName != nil && len(*in.DisplayName) > maxDisplayNameLen {
		return nil, models.NewValidationError("displayName too long (max 100 characters)")
	}
	if in.Bio != nil && len(*in.Bio) > maxBioLen {
		return nil, models.NewValidationError("bio too long (max 500 characters)")
	}

	return s.userRepo.UpdateProfile(ctx, in.UserID, repository.ProfileUpdate{
		DisplayName: in.DisplayName,
		Bio:         in.Bio,
		Image:       in.Image,
	})
}
