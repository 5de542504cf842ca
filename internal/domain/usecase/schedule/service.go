package schedule

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
)

// Service implements usecase.ScheduleUseCase over a webinar repository
type Service struct {
	webinarRepo  persistence.WebinarRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	location     string
}

// NewService creates a schedule service. location is written into calendar events;
// an empty value uses entity.DefaultWebinarLocation.
func NewService(
	webinarRepo persistence.WebinarRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	location string,
) usecase.ScheduleUseCase {
	return &Service{
		webinarRepo:  webinarRepo,
		timeProvider: timeProvider,
		logger:       logger,
		location:     location,
	}
}

// Upcoming returns active webinars after now, soonest first
func (s *Service) Upcoming(ctx context.Context, limit int) ([]*entity.Webinar, error) {
	webinars, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	upcoming := make([]*entity.Webinar, 0, len(webinars))
	for _, w := range webinars {
		if w.IsUpcoming(now) {
			upcoming = append(upcoming, w)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledAt.Before(upcoming[j].ScheduledAt)
	})

	return truncate(upcoming, limit), nil
}

// Past returns webinars with a replay, most recent first
func (s *Service) Past(ctx context.Context, query string, limit int) ([]*entity.Webinar, error) {
	webinars, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	replays := make([]*entity.Webinar, 0, len(webinars))
	for _, w := range webinars {
		if !w.HasReplay() {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(w.Title), query) &&
			!strings.Contains(strings.ToLower(w.Description), query) {
			continue
		}
		replays = append(replays, w)
	}

	sort.SliceStable(replays, func(i, j int) bool {
		return replays[i].ScheduledAt.After(replays[j].ScheduledAt)
	})

	return truncate(replays, limit), nil
}

// Next returns the soonest upcoming webinar with its countdown
func (s *Service) Next(ctx context.Context) (*usecase.NextWebinar, error) {
	upcoming, err := s.Upcoming(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(upcoming) == 0 {
		return nil, errs.ErrNoUpcomingWebinar
	}

	next := upcoming[0]
	return &usecase.NextWebinar{
		Webinar:   next,
		Countdown: next.Countdown(s.timeProvider.Now()),
	}, nil
}

// Get returns one webinar by ID
func (s *Service) Get(ctx context.Context, id string) (*entity.Webinar, error) {
	webinar, err := s.webinarRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, errs.ErrWebinarNotFound) {
			s.logger.Error("Failed to get webinar", map[string]any{
				"webinar_id": id,
				"error":      err.Error(),
			})
		}
		return nil, err
	}
	return webinar, nil
}

// CalendarLink builds the calendar link for one provider
func (s *Service) CalendarLink(ctx context.Context, id string, provider entity.CalendarProvider) (string, error) {
	webinar, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	link := entity.BuildCalendarLink(webinar.CalendarEvent(s.location), provider)
	if link == "" {
		return "", errs.ErrUnsupportedProvider
	}
	return link, nil
}

// CalendarLinks builds the calendar links for every provider
func (s *Service) CalendarLinks(ctx context.Context, id string) (map[entity.CalendarProvider]string, error) {
	webinar, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.BuildCalendarLinks(webinar.CalendarEvent(s.location)), nil
}

func (s *Service) list(ctx context.Context) ([]*entity.Webinar, error) {
	webinars, err := s.webinarRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list webinars", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return webinars, nil
}

func truncate(webinars []*entity.Webinar, limit int) []*entity.Webinar {
	if limit > 0 && len(webinars) > limit {
		return webinars[:limit]
	}
	return webinars
}
