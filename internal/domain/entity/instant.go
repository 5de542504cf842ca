package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
)

// Layouts accepted for zone-less date-times; these are read in the local zone
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// dateOnlyLayout is read as UTC midnight, the way browsers read a bare ISO date
const dateOnlyLayout = "2006-01-02"

// ParseInstant parses a timestamp string into a time.Time.
// It tries RFC 3339 (with or without fractional seconds) first, then zone-less
// date-times in the local zone, then a bare date at UTC midnight.
func ParseInstant(value string) (time.Time, error) {
	return ParseInstantIn(value, time.Local)
}

// ParseInstantIn is ParseInstant with an explicit zone for zone-less date-times
func ParseInstantIn(value string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errs.NewParseError(value, nil)
	}

	t, firstErr := time.Parse(time.RFC3339Nano, trimmed)
	if firstErr == nil {
		return t, nil
	}

	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse(dateOnlyLayout, trimmed); err == nil {
		return t, nil
	}

	return time.Time{}, errs.NewParseError(value, firstErr)
}
