package app

import (
	"context"
	"errors"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
	"github.com/joshtello/caffeine-calculator-app/internal/dose"
)

// EstimateService orchestrates the pharmacokinetic core: it loads a
// day's intakes and the user's profile, projects the total caffeine
// level at bedtime and derives per-intake advisory cutoffs and
// safety classifications. The service resolves "now"-adjacent inputs
// (the reference day, the bedtime) from the request; the core itself
// never reads a clock.
type EstimateService struct {
	intakes     domain.IntakeRepository
	profiles    domain.ProfileRepository
	thresholdMg float64
	step        time.Duration
}

// NewEstimateService creates an EstimateService with the default safe
// threshold and sampling step.
func NewEstimateService(intakes domain.IntakeRepository, profiles domain.ProfileRepository) *EstimateService {
	return &EstimateService{
		intakes:     intakes,
		profiles:    profiles,
		thresholdMg: dose.DefaultSafeThresholdMg,
		step:        dose.DefaultStep,
	}
}

// IntakeCutoff pairs a logged intake with its latest-safe-time result.
type IntakeCutoff struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Cutoff dose.Cutoff `json:"cutoff"`
}

// Evaluation is the full bedtime projection for one day.
type Evaluation struct {
	Day           string               `json:"day"`
	Bedtime       domain.ClockTime     `json:"bedtime"`
	HalfLifeHours float64              `json:"halfLifeHours"`
	BedtimeMg     float64              `json:"bedtimeMg"`
	Risk          dose.Risk            `json:"risk"`
	DailyTotalMg  float64              `json:"dailyTotalMg"`
	DailyWarning  dose.Warning         `json:"dailyWarning"`
	Typo          *dose.TypoSuggestion `json:"typo,omitempty"`
	Cutoffs       []IntakeCutoff       `json:"cutoffs"`
}

// Evaluate computes the bedtime projection for the given user, local
// day and bedtime. Without a stored profile the base half-life is
// used unadjusted.
func (s *EstimateService) Evaluate(ctx context.Context, userID int64, day string, bedtime domain.ClockTime) (*Evaluation, error) {
	ref, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return nil, errors.New("day must be formatted YYYY-MM-DD")
	}

	events, err := s.intakes.ListIntakesForLocalDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	halfLife, err := s.halfLife(ctx, userID)
	if err != nil {
		return nil, err
	}

	intakes := make([]domain.Intake, 0, len(events))
	var dailyTotal float64
	for _, e := range events {
		intakes = append(intakes, e.Intake)
		if e.Intake.DoseMg > 0 {
			dailyTotal += e.Intake.DoseMg
		}
	}

	bedAt := dose.ResolveBedtime(bedtime, ref)
	total := dose.TotalAt(intakes, halfLife, ref, bedAt, s.step)

	cutoffs := make([]IntakeCutoff, 0, len(events))
	for _, e := range events {
		own := dose.ConcentrationAt(e.Intake, halfLife, ref, bedAt, s.step)
		allowed := dose.AllowedBudget(s.thresholdMg, total-own)
		cutoffs = append(cutoffs, IntakeCutoff{
			ID:     e.ID,
			Name:   e.Intake.Name,
			Cutoff: dose.LatestSafeTime(bedAt, halfLife, e.Intake.DoseMg, allowed, ref),
		})
	}

	return &Evaluation{
		Day:           day,
		Bedtime:       bedtime,
		HalfLifeHours: halfLife,
		BedtimeMg:     total,
		Risk:          dose.SleepRisk(total),
		DailyTotalMg:  dailyTotal,
		DailyWarning:  dose.DailyWarning(dailyTotal),
		Typo:          dose.TypoSuspect(intakes),
		Cutoffs:       cutoffs,
	}, nil
}

func (s *EstimateService) halfLife(ctx context.Context, userID int64) (float64, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return dose.BaseHalfLifeHours, nil
	}
	return dose.AdjustedHalfLife(*profile), nil
}
