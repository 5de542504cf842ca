package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
)

// DefaultWebinarLocation is the calendar location used for online sessions
const DefaultWebinarLocation = "Online Webinar"

// Webinar is one session of the series
type Webinar struct {
	ID                 string    // Stable identifier used in URLs
	Title              string    // Session title
	Description        string    // Full description
	ScheduledAt        time.Time // Start instant
	DurationMinutes    int       // Planned length
	HostName           string
	HostBio            string
	HostImageURL       string
	MaxCapacity        int    // 0 means unlimited
	RegistrationsCount int    // Registrations taken so far
	ReplayURL          string // Set once a recording is published
	IsActive           bool   // Inactive sessions are hidden from the schedule
}

// NewWebinar creates a webinar after checking the fields the schedule relies on
func NewWebinar(id, title string, scheduledAt time.Time, durationMinutes int) (*Webinar, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewScheduleError(id, "id", "must not be empty", errs.ErrInvalidRequest)
	}
	if strings.TrimSpace(title) == "" {
		return nil, errs.NewScheduleError(id, "title", "must not be empty", errs.ErrInvalidRequest)
	}
	if scheduledAt.IsZero() {
		return nil, errs.NewScheduleError(id, "scheduledAt", "must be set", errs.ErrInvalidInstant)
	}
	if durationMinutes <= 0 {
		return nil, errs.NewScheduleError(id, "durationMinutes", "must be positive", errs.ErrInvalidDuration)
	}

	return &Webinar{
		ID:              id,
		Title:           title,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		IsActive:        true,
	}, nil
}

// EndsAt returns the planned end instant
func (w *Webinar) EndsAt() time.Time {
	return w.ScheduledAt.Add(time.Duration(w.DurationMinutes) * time.Minute)
}

// IsUpcoming reports whether the webinar is active and starts after now
func (w *Webinar) IsUpcoming(now time.Time) bool {
	return w.IsActive && w.ScheduledAt.After(now)
}

// HasReplay reports whether a recording is available
func (w *Webinar) HasReplay() bool {
	return w.ReplayURL != ""
}

// AvailableSpots returns the seats left, or -1 when capacity is unlimited
func (w *Webinar) AvailableSpots() int {
	if w.MaxCapacity <= 0 {
		return -1
	}
	spots := w.MaxCapacity - w.RegistrationsCount
	if spots < 0 {
		return 0
	}
	return spots
}

// CalendarEvent converts the webinar into an exportable event at location
func (w *Webinar) CalendarEvent(location string) CalendarEvent {
	if location == "" {
		location = DefaultWebinarLocation
	}
	return NewCalendarEvent(w.Title, w.Description, location, w.ScheduledAt, w.DurationMinutes)
}

// Countdown returns the countdown to the webinar's start as seen at now
func (w *Webinar) Countdown(now time.Time) Countdown {
	return NewCountdown(w.ScheduledAt, now)
}
