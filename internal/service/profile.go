package service

import (
	"context"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, id domain.UserID) (*domain.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

func (s *profileService) UpdateProfile(ctx context.Context, actorID domain.UserID, profile *domain.Profile) error {
	if profile.ID != actorID {
		return ErrNotOwner
	}
	return s.profileRepo.Update(ctx, profile)
}
