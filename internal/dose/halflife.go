// Package dose implements the caffeine pharmacokinetic model: the
// personalised elimination half-life, single-intake concentration
// curves, multi-intake aggregation, the inverse "latest safe time"
// solver and the intake safety classifiers. Everything here is a pure
// function of its inputs; the package never reads a clock, so callers
// must pass an explicit reference day for any time resolution.
package dose

import (
	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// Half-life constants in hours.
const (
	BaseHalfLifeHours = 5.0
	MinHalfLifeHours  = 1.0
)

// AdjustedHalfLife computes the personalised elimination half-life for
// a profile. Adjustments are additive and independent: age over 50
// adds an hour, ages 30-50 half an hour; weight under 60 kg adds half
// an hour, over 90 kg removes half an hour; female sex adds half an
// hour. The result never drops below MinHalfLifeHours.
//
// The profile is assumed validated (see domain.PersonalProfile);
// callers reject malformed profiles at the boundary.
func AdjustedHalfLife(p domain.PersonalProfile) float64 {
	h := BaseHalfLifeHours

	switch {
	case p.Age > 50:
		h += 1.0
	case p.Age >= 30:
		h += 0.5
	}

	switch {
	case p.WeightKg < 60:
		h += 0.5
	case p.WeightKg > 90:
		h -= 0.5
	}

	if p.Sex == domain.SexFemale {
		h += 0.5
	}

	if h < MinHalfLifeHours {
		return MinHalfLifeHours
	}
	return h
}
