package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/webinar-hub/mocks/port/usecase"
)

func sampleWebinar() *entity.Webinar {
	return &entity.Webinar{
		ID:                 "react",
		Title:              "Mastering Modern React Patterns",
		Description:        "Hooks",
		ScheduledAt:        time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC),
		DurationMinutes:    90,
		HostName:           "Sarah Chen",
		MaxCapacity:        500,
		RegistrationsCount: 1500,
		IsActive:           true,
	}
}

func newScheduleRouter(schedule *usecasemocks.MockScheduleUseCase) *gin.Engine {
	h := NewScheduleHandler(schedule, timeprovider.NewManualTimeProvider(fixedNow), logger.NewNoopLogger())
	router := gin.New()
	router.GET("/api/webinars/upcoming", h.Upcoming)
	router.GET("/api/webinars/past", h.Past)
	router.GET("/api/webinars/next", h.Next)
	router.GET("/api/webinars/:id", h.Get)
	router.GET("/api/webinars/:id/calendar/:provider", h.CalendarLink)
	return router
}

func TestScheduleHandler_Upcoming(t *testing.T) {
	t.Run("should use default limit and render display strings", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("Upcoming", mock.Anything, DefaultUpcomingLimit).Return([]*entity.Webinar{sampleWebinar()}, nil)

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/upcoming", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.WebinarListResponse](t, w)
		require.Equal(t, 1, body.Count)
		got := body.Webinars[0]
		assert.Equal(t, "Thursday, January 23, 2025", got.Date)
		assert.Equal(t, "2:00 PM", got.Time)
		assert.Equal(t, "1h 30m", got.Duration)
		assert.Equal(t, "1.5K", got.Registrations)
		assert.Equal(t, 0, got.AvailableSpots)
		assert.Equal(t, "2025-01-23T15:30:00Z", got.EndsAt)
		assert.Equal(t, "Sarah Chen", got.Host.Name)
		schedule.AssertExpectations(t)
	})

	t.Run("should honour limit and timezone", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("Upcoming", mock.Anything, 1).Return([]*entity.Webinar{sampleWebinar()}, nil)

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/upcoming?limit=1&tz=America/New_York", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "9:00 AM", decode[dto.WebinarListResponse](t, w).Webinars[0].Time)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("Upcoming", mock.Anything, DefaultUpcomingLimit).Return(nil, errors.New("disk on fire"))

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/upcoming", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, domainerr.CodeInternalServer, body.Code)
		assert.Equal(t, "Internal server error", body.Message)
	})
}

func TestScheduleHandler_Past(t *testing.T) {
	schedule := new(usecasemocks.MockScheduleUseCase)
	replay := sampleWebinar()
	replay.ReplayURL = "https://example.com/replay"
	schedule.On("Past", mock.Anything, "react", DefaultPastLimit).Return([]*entity.Webinar{replay}, nil)

	w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/past?q=react&limit=abc", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com/replay", decode[dto.WebinarListResponse](t, w).Webinars[0].ReplayURL)
	schedule.AssertExpectations(t)
}

func TestScheduleHandler_Next(t *testing.T) {
	schedule := new(usecasemocks.MockScheduleUseCase)
	webinar := sampleWebinar()
	schedule.On("Next", mock.Anything).Return(&usecase.NextWebinar{
		Webinar:   webinar,
		Countdown: webinar.Countdown(fixedNow),
	}, nil)

	w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/next", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.NextWebinarResponse](t, w)
	assert.Equal(t, "react", body.Webinar.ID)
	assert.Equal(t, int64(3), body.Countdown.Days)
}

func TestScheduleHandler_Get(t *testing.T) {
	t.Run("should include calendar links", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("Get", mock.Anything, "react").Return(sampleWebinar(), nil)
		schedule.On("CalendarLinks", mock.Anything, "react").Return(map[entity.CalendarProvider]string{
			entity.ProviderGoogle:  "https://calendar.google.com/x",
			entity.ProviderOutlook: "https://outlook.live.com/x",
			entity.ProviderApple:   "data:text/calendar;charset=utf-8,x",
		}, nil)

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/react", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.WebinarResponse](t, w)
		assert.Len(t, body.CalendarLinks, 3)
		assert.Equal(t, "https://calendar.google.com/x", body.CalendarLinks["google"])
	})

	t.Run("should return 404 for unknown webinar", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("Get", mock.Anything, "nope").Return(nil, domainerr.ErrWebinarNotFound)

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, domainerr.CodeWebinarNotFound, body.Code)
		assert.Equal(t, "Webinar not found", body.Message)
	})
}

func TestScheduleHandler_CalendarLink(t *testing.T) {
	t.Run("should return provider link", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("CalendarLink", mock.Anything, "react", entity.ProviderGoogle).Return("https://calendar.google.com/x", nil)

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/react/calendar/google", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dto.CalendarLinkResponse{Provider: "google", URL: "https://calendar.google.com/x"},
			decode[dto.CalendarLinkResponse](t, w))
	})

	t.Run("should reject unsupported provider", func(t *testing.T) {
		schedule := new(usecasemocks.MockScheduleUseCase)
		schedule.On("CalendarLink", mock.Anything, "react", entity.CalendarProvider("yahoo")).Return("", domainerr.ErrUnsupportedProvider)

		w := perform(newScheduleRouter(schedule), http.MethodGet, "/api/webinars/react/calendar/yahoo", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeUnsupportedProvider, decodeError(t, w).Code)
	})
}
