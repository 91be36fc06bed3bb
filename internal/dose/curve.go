package dose

import (
	"math"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// DefaultStep is the sampling resolution used when callers do not pick
// their own. Concentration queries hold the last sample at or before
// the target instant, so every reported value lies exactly on this grid.
const DefaultStep = 30 * time.Minute

// Consumption windows of at most a minute collapse to an instantaneous
// intake.
const instantaneousWindow = time.Minute

// ResolveWindow places an intake's consumption window on the calendar
// day of ref. An end clock time earlier than the start is read as
// crossing midnight, so the end lands on the following day. A window
// of at most a minute collapses to the start instant.
func ResolveWindow(in domain.Intake, ref time.Time) (start, end time.Time) {
	start = in.Start.On(ref)
	if in.End == nil {
		return start, start
	}
	end = in.End.On(ref)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	if end.Sub(start) <= instantaneousWindow {
		return start, start
	}
	return start, end
}

// ResolveBedtime places a bedtime on the reference day, rolling over to
// the next day when the clock hour is before noon ("1 AM" bedtime means
// 1 AM tomorrow relative to intakes logged today).
func ResolveBedtime(bed domain.ClockTime, ref time.Time) time.Time {
	t := bed.On(ref)
	if bed.Hour < 12 {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// ConcentrationAt returns the circulating caffeine in mg contributed by
// one intake at the target instant. The value is evaluated at the last
// sampling-grid instant at or before target, with the grid anchored at
// the intake's start, so a query matches the corresponding curve sample
// exactly. Before the start, and for non-positive doses, the result
// is 0.
//
// Instantaneous intakes decay exponentially from the full dose.
// Gradual intakes load linearly at dose/duration across the window
// with no concurrent decay, then decay from the full dose once the
// window closes.
func ConcentrationAt(in domain.Intake, halfLifeHours float64, ref, target time.Time, step time.Duration) float64 {
	if in.DoseMg <= 0 || halfLifeHours <= 0 {
		return 0
	}
	if step <= 0 {
		step = DefaultStep
	}

	start, end := ResolveWindow(in, ref)
	if target.Before(start) {
		return 0
	}

	// Hold to the last grid instant at or before the target.
	t := start.Add(target.Sub(start) / step * step)

	duration := end.Sub(start)
	if duration == 0 {
		return decayed(in.DoseMg, t.Sub(start).Hours(), halfLifeHours)
	}
	if t.Before(end) {
		rate := in.DoseMg / duration.Hours()
		return rate * t.Sub(start).Hours()
	}
	return decayed(in.DoseMg, t.Sub(end).Hours(), halfLifeHours)
}

// decayed applies first-order elimination to an initial amount after
// the given number of hours.
func decayed(mg, hours, halfLifeHours float64) float64 {
	return mg * math.Pow(0.5, hours/halfLifeHours)
}
