package service

import (
	"context"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/repository"
)

// ProfileService handles business logic for profiles
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return s.profileRepo.GetByID(ctx, profileID)
}

// UpdateInfo updates the profile's display fields and returns the fresh profile
func (s *ProfileService) UpdateInfo(ctx context.Context, profileID, firstName, lastName, avatarURL string) (*domain.Profile, error) {
	if err := s.profileRepo.UpdateInfo(ctx, profileID, firstName, lastName, avatarURL); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByID(ctx, profileID)
}
