package dose

import (
	"math"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// Warning classifies a day's total caffeine dose.
type Warning string

// Daily-total classifications.
const (
	WarnNone    Warning = "none"
	WarnCaution Warning = "caution"
	WarnDanger  Warning = "danger"
)

// Daily-total thresholds in mg.
const (
	dailyCautionMg = 600
	dailyDangerMg  = 1000
)

// DailyWarning classifies the aggregate daily dose: under 600 mg is
// unremarkable, 600-999 mg warrants caution, 1000 mg and over is
// dangerous. Advisory only, never blocking.
func DailyWarning(totalMg float64) Warning {
	switch {
	case totalMg >= dailyDangerMg:
		return WarnDanger
	case totalMg >= dailyCautionMg:
		return WarnCaution
	default:
		return WarnNone
	}
}

// Risk classifies a projected bedtime concentration.
type Risk string

// Bedtime concentration classifications.
const (
	RiskOK      Risk = "ok"
	RiskCaution Risk = "caution"
	RiskHigh    Risk = "high"
)

// Bedtime thresholds in mg.
const (
	sleepCautionMg = 30
	sleepHighMg    = 80
)

// SleepRisk classifies a projected bedtime level: under 30 mg should
// not disturb sleep, 30-80 mg may, above 80 mg very likely will.
func SleepRisk(bedtimeMg float64) Risk {
	switch {
	case bedtimeMg > sleepHighMg:
		return RiskHigh
	case bedtimeMg >= sleepCautionMg:
		return RiskCaution
	default:
		return RiskOK
	}
}

// Any single dose above this is more plausibly a data-entry slip than
// a real drink.
const typoDoseLimitMg = 5000

// TypoSuggestion proposes a corrected dose for a suspiciously large
// entry, assuming the user misplaced a decimal or typed two extra
// digits.
type TypoSuggestion struct {
	Name        string  `json:"name"`
	DoseMg      float64 `json:"doseMg"`
	SuggestedMg float64 `json:"suggestedMg"`
}

// TypoSuspect flags the first intake whose dose exceeds 5000 mg,
// suggesting dose/100 rounded to the nearest mg. Returns nil when
// every dose is plausible.
func TypoSuspect(intakes []domain.Intake) *TypoSuggestion {
	for _, in := range intakes {
		if in.DoseMg > typoDoseLimitMg {
			return &TypoSuggestion{
				Name:        in.Name,
				DoseMg:      in.DoseMg,
				SuggestedMg: math.Round(in.DoseMg / 100),
			}
		}
	}
	return nil
}
