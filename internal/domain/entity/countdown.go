package entity

import (
	"fmt"
	"time"
)

// Millisecond conversion factors used by the breakdown
const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// ExpiredLabel is shown in place of the countdown once the target has passed
const ExpiredLabel = "Webinar is Live Now!"

// DurationBreakdown is the calendar-style split of the time left until a target.
// All fields are zero iff the target is at or before the reference instant.
type DurationBreakdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Total   int64 `json:"total"` // milliseconds
}

// TimeUntil computes the time left from now until target.
// The delta is taken in whole milliseconds; each field is floored and bounded
// by the next unit (hours < 24, minutes < 60, seconds < 60).
func TimeUntil(target, now time.Time) DurationBreakdown {
	total := target.Sub(now).Milliseconds()
	if total <= 0 {
		return DurationBreakdown{}
	}

	return DurationBreakdown{
		Days:    total / msPerDay,
		Hours:   (total % msPerDay) / msPerHour,
		Minutes: (total % msPerHour) / msPerMinute,
		Seconds: (total % msPerMinute) / msPerSecond,
		Total:   total,
	}
}

// Expired reports whether the breakdown is the canonical expired value
func (b DurationBreakdown) Expired() bool {
	return b.Total <= 0
}

// Countdown is one rendered tick of a live countdown
type Countdown struct {
	DurationBreakdown
	Target    time.Time `json:"target"`
	IsExpired bool      `json:"isExpired"`
}

// NewCountdown computes the countdown to target as seen at now
func NewCountdown(target, now time.Time) Countdown {
	breakdown := TimeUntil(target, now)
	return Countdown{
		DurationBreakdown: breakdown,
		Target:            target,
		IsExpired:         breakdown.Expired(),
	}
}

// Label renders the countdown with two-digit segments, or ExpiredLabel once expired
func (c Countdown) Label() string {
	if c.IsExpired {
		return ExpiredLabel
	}
	return fmt.Sprintf("%02d days %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// Segments returns the zero-padded values with their display labels, largest unit first
func (c Countdown) Segments() []CountdownSegment {
	return []CountdownSegment{
		{Value: fmt.Sprintf("%02d", c.Days), Label: "Days"},
		{Value: fmt.Sprintf("%02d", c.Hours), Label: "Hours"},
		{Value: fmt.Sprintf("%02d", c.Minutes), Label: "Minutes"},
		{Value: fmt.Sprintf("%02d", c.Seconds), Label: "Seconds"},
	}
}

// CountdownSegment is a single unit box of the countdown display
type CountdownSegment struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
