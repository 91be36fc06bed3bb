package dose

import (
	"math"
	"time"
)

// DefaultSafeThresholdMg is the bedtime concentration budget used when
// the caller supplies no threshold of their own.
const DefaultSafeThresholdMg = 30.0

// CutoffKind tags the outcome of the latest-safe-time solver.
type CutoffKind string

// Solver outcomes.
const (
	// CutoffBefore: the dose is safe when consumed at or before At.
	CutoffBefore CutoffKind = "before"
	// CutoffAnyTime: the dose alone can never exceed the budget, no
	// matter when it is consumed.
	CutoffAnyTime CutoffKind = "anyTime"
	// CutoffOverLimit: the budget is already exhausted by other
	// intakes, or no moment of the reference day would be safe.
	CutoffOverLimit CutoffKind = "overLimit"
)

// Cutoff is the solver result. At is meaningful only for CutoffBefore.
type Cutoff struct {
	Kind CutoffKind `json:"kind"`
	At   time.Time  `json:"at,omitzero"`
}

// AllowedBudget returns the mg budget left for one intake under the
// threshold after the other intakes' bedtime contribution, floored
// at 0.
func AllowedBudget(thresholdMg, othersMg float64) float64 {
	b := thresholdMg - othersMg
	if b < 0 {
		return 0
	}
	return b
}

// LatestSafeTime inverts the instantaneous decay formula to find the
// latest consumption instant that keeps the dose's bedtime residual
// within allowedMg:
//
//	hoursBeforeBed = halfLife × log2(dose / allowed)
//
// A non-positive budget means other intakes already fill it
// (CutoffOverLimit); a dose at or under the budget needs no cutoff at
// all (CutoffAnyTime). The computed instant is clamped against
// dayStart, the midnight opening the reference day: a cutoff earlier
// than that means no moment of the day is safe, reported as
// CutoffOverLimit rather than a nonsensical time.
func LatestSafeTime(bedtime time.Time, halfLifeHours, doseMg, allowedMg float64, dayStart time.Time) Cutoff {
	if allowedMg <= 0 {
		return Cutoff{Kind: CutoffOverLimit}
	}
	if doseMg <= allowedMg {
		return Cutoff{Kind: CutoffAnyTime}
	}

	hoursBefore := halfLifeHours * math.Log2(doseMg/allowedMg)
	at := bedtime.Add(-time.Duration(hoursBefore * float64(time.Hour)))
	if at.Before(dayStart) {
		return Cutoff{Kind: CutoffOverLimit}
	}
	return Cutoff{Kind: CutoffBefore, At: at}
}
