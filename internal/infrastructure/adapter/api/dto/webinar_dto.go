package dto

import (
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// HostResponse describes the presenter
type HostResponse struct {
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// SummaryLength caps the card-sized description in WebinarResponse
const SummaryLength = 120

// WebinarResponse is a webinar with its display strings
type WebinarResponse struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Summary            string            `json:"summary"`
	ScheduledAt        string            `json:"scheduledAt"`
	EndsAt             string            `json:"endsAt"`
	Date               string            `json:"date"`
	Time               string            `json:"time"`
	Duration           string            `json:"duration"`
	DurationMinutes    int               `json:"durationMinutes"`
	Host               HostResponse      `json:"host"`
	MaxCapacity        int               `json:"maxCapacity"`
	RegistrationsCount int               `json:"registrationsCount"`
	Registrations      string            `json:"registrations"`
	AvailableSpots     int               `json:"availableSpots"`
	ReplayURL          string            `json:"replayUrl,omitempty"`
	IsActive           bool              `json:"isActive"`
	CalendarLinks      map[string]string `json:"calendarLinks,omitempty"`
}

// NewWebinarResponse renders w with dates and times in loc
func NewWebinarResponse(w *entity.Webinar, loc *time.Location) WebinarResponse {
	return WebinarResponse{
		ID:              w.ID,
		Title:           w.Title,
		Description:     w.Description,
		Summary:         entity.TruncateText(w.Description, SummaryLength),
		ScheduledAt:     w.ScheduledAt.UTC().Format(time.RFC3339),
		EndsAt:          w.EndsAt().UTC().Format(time.RFC3339),
		Date:            entity.FormatDateIn(w.ScheduledAt, loc),
		Time:            entity.FormatTimeIn(w.ScheduledAt, loc),
		Duration:        entity.FormatDuration(w.DurationMinutes),
		DurationMinutes: w.DurationMinutes,
		Host: HostResponse{
			Name:     w.HostName,
			Bio:      w.HostBio,
			ImageURL: w.HostImageURL,
		},
		MaxCapacity:        w.MaxCapacity,
		RegistrationsCount: w.RegistrationsCount,
		Registrations:      entity.FormatNumber(int64(w.RegistrationsCount)),
		AvailableSpots:     w.AvailableSpots(),
		ReplayURL:          w.ReplayURL,
		IsActive:           w.IsActive,
	}
}

// WithCalendarLinks attaches provider links keyed by provider name
func (r WebinarResponse) WithCalendarLinks(links map[entity.CalendarProvider]string) WebinarResponse {
	r.CalendarLinks = make(map[string]string, len(links))
	for p, url := range links {
		r.CalendarLinks[string(p)] = url
	}
	return r
}

// WebinarListResponse wraps a list of webinars
type WebinarListResponse struct {
	Webinars []WebinarResponse `json:"webinars"`
	Count    int               `json:"count"`
}

// NewWebinarListResponse renders every webinar in loc
func NewWebinarListResponse(webinars []*entity.Webinar, loc *time.Location) WebinarListResponse {
	out := make([]WebinarResponse, 0, len(webinars))
	for _, w := range webinars {
		out = append(out, NewWebinarResponse(w, loc))
	}
	return WebinarListResponse{Webinars: out, Count: len(out)}
}

// NextWebinarResponse is the next session and its countdown
type NextWebinarResponse struct {
	Webinar   WebinarResponse   `json:"webinar"`
	Countdown CountdownResponse `json:"countdown"`
}
