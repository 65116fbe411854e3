package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a local time of day without a date, as it appears in a
// rotation leg ("HH:MM"). It marshals to and from the exact string form so
// persisted leg payloads round-trip unchanged.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a "HH:MM" string into a ClockTime.
// Returns a wrapped ErrValidation error on malformed input.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil || len(s) != 5 || s[2] != ':' {
		return ClockTime{}, NewValidationError("time %q must be in HH:MM format", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, NewValidationError("time %q is out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// String returns the canonical "HH:MM" form.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the time of day as minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// At anchors the clock time onto the calendar date of anchor, in UTC.
// Only the year, month and day of anchor are used.
func (c ClockTime) At(anchor time.Time) time.Time {
	y, mo, d := anchor.UTC().Date()
	return time.Date(y, mo, d, c.Hour, c.Minute, 0, 0, time.UTC)
}

// NotAfter reports whether c is clock-earlier-than-or-equal to other.
// An arrival that is NotAfter its departure lands on the next calendar day.
func (c ClockTime) NotAfter(other ClockTime) bool {
	return c.Minutes() <= other.Minutes()
}

// MarshalJSON encodes the clock time as its "HH:MM" string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a "HH:MM" string into the clock time.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
