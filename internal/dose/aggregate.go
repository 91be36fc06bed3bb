package dose

import (
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// Chart horizons in hours. The longer one is used when the evaluation
// plausibly spills past midnight.
const (
	HorizonDefault  = 24
	HorizonExtended = 48
)

// Sample is one point of a concentration curve.
type Sample struct {
	Time time.Time `json:"time"`
	Mg   float64   `json:"mg"`
}

// IntakeSeries is one intake's sampled curve, labeled for charting.
// Curves are never merged; the total is always computed separately so
// each drink keeps its own attribution in the visualisation.
type IntakeSeries struct {
	Name    string   `json:"name"`
	Samples []Sample `json:"samples"`
}

// TotalAt sums the concentration contributions of all intakes at the
// target instant. Intakes without a positive dose are silently
// excluded. An empty list totals 0.
func TotalAt(intakes []domain.Intake, halfLifeHours float64, ref, target time.Time, step time.Duration) float64 {
	var total float64
	for _, in := range intakes {
		total += ConcentrationAt(in, halfLifeHours, ref, target, step)
	}
	return total
}

// Series computes one labeled curve per intake on a common time axis
// starting at ref and spanning horizonHours, sampled every step.
func Series(intakes []domain.Intake, halfLifeHours float64, ref time.Time, horizonHours int, step time.Duration) []IntakeSeries {
	if step <= 0 {
		step = DefaultStep
	}
	end := ref.Add(time.Duration(horizonHours) * time.Hour)

	out := make([]IntakeSeries, 0, len(intakes))
	for _, in := range intakes {
		if in.DoseMg <= 0 {
			continue
		}
		var samples []Sample
		for t := ref; !t.After(end); t = t.Add(step) {
			samples = append(samples, Sample{Time: t, Mg: ConcentrationAt(in, halfLifeHours, ref, t, step)})
		}
		out = append(out, IntakeSeries{Name: in.Name, Samples: samples})
	}
	return out
}

// HorizonHours picks the chart horizon: 24 hours normally, 48 when the
// bedtime or any intake end time has a clock hour before noon, the
// heuristic for "this spills into tomorrow".
func HorizonHours(bedtime domain.ClockTime, intakes []domain.Intake) int {
	if bedtime.Hour < 12 {
		return HorizonExtended
	}
	for _, in := range intakes {
		if in.End != nil && in.End.Hour < 12 {
			return HorizonExtended
		}
	}
	return HorizonDefault
}
