package entity

import (
	"fmt"
	"strings"
	"time"
)

// WeeklySlot is the recurring day and time the series runs on
type WeeklySlot struct {
	Weekday  time.Weekday
	Hour     int
	Minute   int
	Location *time.Location
}

// Next returns the first slot strictly after today's date in the slot's zone.
// When today is the slot's weekday the following week is used, even if the hour has not passed.
func (s WeeklySlot) Next(now time.Time) time.Time {
	return NextWeeklySlot(now, s.Weekday, s.Hour, s.Minute, s.Location)
}

// At returns the slot weekOffset weeks after Next(now); negative offsets go back in time
func (s WeeklySlot) At(now time.Time, weekOffset int) time.Time {
	return s.Next(now).AddDate(0, 0, 7*weekOffset)
}

// NextWeeklySlot finds the next weekday at hour:minute in loc.
// days until = (weekday - today + 7) % 7, with 0 meaning a full week ahead.
func NextWeeklySlot(now time.Time, weekday time.Weekday, hour, minute int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)

	days := (int(weekday) - int(local.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	return time.Date(local.Year(), local.Month(), local.Day()+days, hour, minute, 0, 0, loc)
}

// ParseWeekday accepts an English weekday name ("thursday", "Thu") in any case
func ParseWeekday(name string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if key == full || (len(key) >= 3 && strings.HasPrefix(full, key)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
