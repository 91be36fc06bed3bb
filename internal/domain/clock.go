package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a time of day with minute resolution, detached from any date.
// Its wire form is "HH:MM" (24-hour).
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String returns the "HH:MM" form.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On places the clock time on the calendar day of ref, in ref's location.
func (c ClockTime) On(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}

// MinutesOfDay returns minutes elapsed since midnight.
func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

// MarshalJSON encodes the clock time as a "HH:MM" string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a "HH:MM" string.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
