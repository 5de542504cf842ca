package model

import (
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
)

// DefaultDurationMinutes applies when a record leaves durationMinutes unset
const DefaultDurationMinutes = 60

// Webinar is the configuration record of one session
type Webinar struct {
	ID          string `mapstructure:"id"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	// ScheduledAt is an instant string; when empty the session is placed on the weekly slot
	ScheduledAt        string `mapstructure:"scheduledAt"`
	WeekOffset         int    `mapstructure:"weekOffset"`
	DurationMinutes    int    `mapstructure:"durationMinutes"`
	HostName           string `mapstructure:"hostName"`
	HostBio            string `mapstructure:"hostBio"`
	HostImageURL       string `mapstructure:"hostImageUrl"`
	MaxCapacity        int    `mapstructure:"maxCapacity"`
	RegistrationsCount int    `mapstructure:"registrationsCount"`
	ReplayURL          string `mapstructure:"replayUrl"`
	IsActive           *bool  `mapstructure:"isActive"` // nil means active
}

// ToEntity resolves the start instant against slot and now and builds the domain webinar
func (m *Webinar) ToEntity(slot entity.WeeklySlot, now time.Time) (*entity.Webinar, error) {
	var scheduledAt time.Time
	if m.ScheduledAt == "" {
		scheduledAt = slot.At(now, m.WeekOffset)
	} else {
		parsed, err := entity.ParseInstantIn(m.ScheduledAt, slot.Location)
		if err != nil {
			return nil, errs.NewScheduleError(m.ID, "scheduledAt", "unparseable", err)
		}
		scheduledAt = parsed
	}

	duration := m.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}

	webinar, err := entity.NewWebinar(m.ID, m.Title, scheduledAt, duration)
	if err != nil {
		return nil, err
	}

	webinar.Description = m.Description
	webinar.HostName = m.HostName
	webinar.HostBio = m.HostBio
	webinar.HostImageURL = m.HostImageURL
	webinar.MaxCapacity = m.MaxCapacity
	webinar.RegistrationsCount = m.RegistrationsCount
	webinar.ReplayURL = m.ReplayURL
	if m.IsActive != nil {
		webinar.IsActive = *m.IsActive
	}

	return webinar, nil
}
