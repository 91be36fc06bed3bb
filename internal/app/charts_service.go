package app

import (
	"context"
	"errors"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
	"github.com/joshtello/caffeine-calculator-app/internal/dose"
)

// ChartsService produces the per-intake concentration series the chart
// view draws. Each intake keeps its own labeled curve; curves are
// never summed into one.
type ChartsService struct {
	intakes  domain.IntakeRepository
	profiles domain.ProfileRepository
}

// NewChartsService creates a ChartsService backed by the given repositories.
func NewChartsService(intakes domain.IntakeRepository, profiles domain.ProfileRepository) *ChartsService {
	return &ChartsService{intakes: intakes, profiles: profiles}
}

// SeriesResult is the chart payload for one day.
type SeriesResult struct {
	Day           string              `json:"day"`
	HorizonHours  int                 `json:"horizonHours"`
	StepMinutes   int                 `json:"stepMinutes"`
	HalfLifeHours float64             `json:"halfLifeHours"`
	Items         []dose.IntakeSeries `json:"items"`
}

// GetSeries samples every intake of the given local day across the
// chart horizon. stepMinutes of 0 selects the default resolution;
// otherwise it must lie within 10-60 minutes.
func (s *ChartsService) GetSeries(ctx context.Context, userID int64, day string, bedtime domain.ClockTime, stepMinutes int) (*SeriesResult, error) {
	if stepMinutes == 0 {
		stepMinutes = int(dose.DefaultStep / time.Minute)
	}
	if stepMinutes < 10 || stepMinutes > 60 {
		return nil, errors.New("stepMinutes must be within [10, 60]")
	}

	ref, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return nil, errors.New("day must be formatted YYYY-MM-DD")
	}

	events, err := s.intakes.ListIntakesForLocalDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	intakes := make([]domain.Intake, 0, len(events))
	for _, e := range events {
		intakes = append(intakes, e.Intake)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	halfLife := dose.BaseHalfLifeHours
	if profile != nil {
		halfLife = dose.AdjustedHalfLife(*profile)
	}

	horizon := dose.HorizonHours(bedtime, intakes)
	step := time.Duration(stepMinutes) * time.Minute

	return &SeriesResult{
		Day:           day,
		HorizonHours:  horizon,
		StepMinutes:   stepMinutes,
		HalfLifeHours: halfLife,
		Items:         dose.Series(intakes, halfLife, ref, horizon, step),
	}, nil
}
