package domain

import (
	"context"
	"time"
)

// Intake is a single caffeine intake: a dose consumed either at one
// instant (End nil or equal to Start) or gradually over [Start, End].
// An End clock time earlier than Start means the interval crosses
// midnight into the next day. Intake is a pure value with no identity.
type Intake struct {
	Name   string     `json:"name"`
	DoseMg float64    `json:"doseMg"`
	Start  ClockTime  `json:"start"`
	End    *ClockTime `json:"end,omitempty"`
}

// Instantaneous reports whether the intake has no meaningful
// consumption interval (missing end, or a window of at most a minute).
func (in Intake) Instantaneous() bool {
	if in.End == nil {
		return true
	}
	d := in.End.MinutesOfDay() - in.Start.MinutesOfDay()
	if d < 0 {
		d += 24 * 60
	}
	return d <= 1
}

// IntakeEvent is a persisted intake log entry, scoped to a user and a
// local calendar day.
type IntakeEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	Intake    Intake    `json:"intake"`
	CreatedAt time.Time `json:"createdAt"`
}

// IntakeRepository is the port for intake-log persistence.
type IntakeRepository interface {
	AddIntakeEvent(ctx context.Context, userID int64, day string, in Intake, createdAt time.Time) (int64, error)
	DeleteIntakeEvent(ctx context.Context, userID int64, id int64) error
	ListIntakesForLocalDay(ctx context.Context, userID int64, localDay string) ([]IntakeEvent, error)
	ListRecentIntakeEvents(ctx context.Context, userID int64, limit int) ([]IntakeEvent, error)
}
