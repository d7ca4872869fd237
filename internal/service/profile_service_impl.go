package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	override *domain.Profile
}

// NewProfileService serves the stored profile. A non-nil override replaces
// it entirely, which is how a config-file profile takes effect.
func NewProfileService(profiles repository.ProfileRepo, override *domain.Profile) ProfileService {
	return &profileService{profiles: profiles, override: override}
}

func (s *profileService) Get(ctx context.Context) (domain.Profile, error) {
	if s.override != nil {
		return *s.override, nil
	}
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return *p, nil
}
