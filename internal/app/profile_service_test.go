package app_test

import (
	"context"
	"math"
	"testing"

	"github.com/joshtello/caffeine-calculator-app/internal/app"
	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

func TestSaveProfile_ConvertsImperial(t *testing.T) {
	var saved domain.PersonalProfile
	repo := &mockProfileRepo{
		saveFn: func(_ context.Context, _ int64, p domain.PersonalProfile) error {
			saved = p
			return nil
		},
	}
	svc := app.NewProfileService(repo)

	got, err := svc.SaveProfile(context.Background(), 1, 35, domain.SexFemale, 154, domain.UnitImperial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 154 * 0.453592
	if math.Abs(saved.WeightKg-want) > 1e-9 || math.Abs(got.WeightKg-want) > 1e-9 {
		t.Errorf("weight stored as %v kg; want %v", saved.WeightKg, want)
	}
}

func TestSaveProfile_Validation(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{})

	tests := []struct {
		name   string
		age    int
		sex    domain.Sex
		weight float64
		unit   domain.WeightUnit
	}{
		{"zero age", 0, domain.SexMale, 75, domain.UnitMetric},
		{"bad sex", 30, domain.Sex("other"), 75, domain.UnitMetric},
		{"zero weight", 30, domain.SexMale, 0, domain.UnitMetric},
		{"bad unit", 30, domain.SexMale, 75, domain.WeightUnit("stone")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SaveProfile(context.Background(), 1, tc.age, tc.sex, tc.weight, tc.unit); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
