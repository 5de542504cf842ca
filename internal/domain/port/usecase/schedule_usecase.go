package usecase

import (
	"context"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// NextWebinar is the next session together with its countdown
type NextWebinar struct {
	Webinar   *entity.Webinar
	Countdown entity.Countdown
}

// ScheduleUseCase defines the read operations over the webinar schedule
type ScheduleUseCase interface {
	// Upcoming returns active webinars starting after now, soonest first.
	// A limit <= 0 returns all of them.
	Upcoming(ctx context.Context, limit int) ([]*entity.Webinar, error)

	// Past returns webinars with a replay, most recent first.
	// query, when not empty, keeps only replays whose title or description contains it
	// (case-insensitive). A limit <= 0 returns all of them.
	Past(ctx context.Context, query string, limit int) ([]*entity.Webinar, error)

	// Next returns the soonest upcoming webinar or ErrNoUpcomingWebinar
	Next(ctx context.Context) (*NextWebinar, error)

	// Get returns one webinar or ErrWebinarNotFound
	Get(ctx context.Context, id string) (*entity.Webinar, error)

	// CalendarLink builds the link for one provider.
	// Returns ErrUnsupportedProvider when the provider is unknown.
	CalendarLink(ctx context.Context, id string, provider entity.CalendarProvider) (string, error)

	// CalendarLinks builds the links for every supported provider
	CalendarLinks(ctx context.Context, id string) (map[entity.CalendarProvider]string, error)
}
