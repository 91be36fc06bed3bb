package app

import (
	"context"
	"errors"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// ProfileService encapsulates personal-profile use cases. Weight
// arrives in the caller's preferred unit and is stored in kilograms.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetProfile returns the stored profile, or nil if none was saved yet.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.PersonalProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// SaveProfile validates and stores a profile. The weight value is
// interpreted in the given unit and converted to kilograms before
// validation and storage.
func (s *ProfileService) SaveProfile(ctx context.Context, userID int64, age int, sex domain.Sex, weight float64, unit domain.WeightUnit) (*domain.PersonalProfile, error) {
	if unit != domain.UnitMetric && unit != domain.UnitImperial {
		return nil, errors.New("unit must be \"metric\" or \"imperial\"")
	}

	p := domain.PersonalProfile{
		Age:      age,
		Sex:      sex,
		WeightKg: domain.ToKilograms(weight, unit),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveProfile(ctx, userID, p); err != nil {
		return nil, err
	}
	return &p, nil
}
