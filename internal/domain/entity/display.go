package entity

import "time"

// Display layouts, English Gregorian
const (
	DateLayout = "Monday, January 2, 2006"
	TimeLayout = "3:04 PM"
)

// FormatDate renders t as "Thursday, January 23, 2025" in the local zone
func FormatDate(t time.Time) string {
	return FormatDateIn(t, time.Local)
}

// FormatTime renders t as "2:00 PM" in the local zone
func FormatTime(t time.Time) string {
	return FormatTimeIn(t, time.Local)
}

// FormatDateTime renders t as "<date> at <time>" in the local zone
func FormatDateTime(t time.Time) string {
	return FormatDateTimeIn(t, time.Local)
}

// FormatDateIn renders the long date of t in loc
func FormatDateIn(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(DateLayout)
}

// FormatTimeIn renders the 12-hour clock time of t in loc
func FormatTimeIn(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(TimeLayout)
}

// FormatDateTimeIn renders "<date> at <time>" for t in loc
func FormatDateTimeIn(t time.Time, loc *time.Location) string {
	return FormatDateIn(t, loc) + " at " + FormatTimeIn(t, loc)
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.Local()
	}
	return t.In(loc)
}
