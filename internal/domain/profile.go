package domain

import (
	"context"
	"errors"
)

// Sex is the biological sex used for half-life adjustment.
type Sex string

// Recognised Sex values.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// WeightUnit selects how weight inputs are interpreted.
type WeightUnit string

// Recognised weight units. Imperial values are converted to kilograms
// before any physiological thresholding.
const (
	UnitMetric   WeightUnit = "metric"   // kilograms
	UnitImperial WeightUnit = "imperial" // pounds
)

const lbToKg = 0.453592

// ToKilograms converts a weight value in the given unit to kilograms.
// Metric values pass through unchanged, as do unrecognised units.
func ToKilograms(v float64, unit WeightUnit) float64 {
	if unit == UnitImperial {
		return v * lbToKg
	}
	return v
}

// PersonalProfile holds the attributes that personalise caffeine
// elimination. Weight is always stored in kilograms; unit conversion
// happens at the boundary. The profile is immutable per calculation.
type PersonalProfile struct {
	Age      int     `json:"age"`
	Sex      Sex     `json:"sex"`
	WeightKg float64 `json:"weightKg"`
}

// Validate rejects profiles the half-life model must not see.
func (p PersonalProfile) Validate() error {
	if p.Age <= 0 {
		return errors.New("age must be > 0")
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return errors.New("sex must be \"male\" or \"female\"")
	}
	if p.WeightKg <= 0 {
		return errors.New("weight must be > 0")
	}
	return nil
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*PersonalProfile, error)
	SaveProfile(ctx context.Context, userID int64, p PersonalProfile) error
}
