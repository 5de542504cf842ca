package entity

import (
	"fmt"
	"time"
)

// Relative time buckets, in seconds
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
)

// RelativeTime renders how long ago past was, as seen at now.
// Under a minute (including instants after now) is "just now"; then whole
// minutes, hours and days; a week or more falls back to the long date.
func RelativeTime(past, now time.Time) string {
	return RelativeTimeIn(past, now, time.Local)
}

// RelativeTimeIn is RelativeTime with the long-date fallback rendered in loc
func RelativeTimeIn(past, now time.Time, loc *time.Location) string {
	seconds := floorDiv(now.Sub(past).Milliseconds(), msPerSecond)

	switch {
	case seconds < secondsPerMinute:
		return "just now"
	case seconds < secondsPerHour:
		return fmt.Sprintf("%dm ago", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%dh ago", seconds/secondsPerHour)
	case seconds < secondsPerWeek:
		return fmt.Sprintf("%dd ago", seconds/secondsPerDay)
	default:
		return FormatDateIn(past, loc)
	}
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
