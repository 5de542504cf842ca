package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/dto"
)

// Default list sizes of the landing page
const (
	DefaultUpcomingLimit = 4
	DefaultPastLimit     = 2
)

// ScheduleHandler serves the webinar schedule
type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewScheduleHandler creates a new schedule handler instance
func NewScheduleHandler(
	scheduleUseCase usecase.ScheduleUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Upcoming handles GET /api/webinars/upcoming?limit=&tz=
func (h *ScheduleHandler) Upcoming(c *gin.Context) {
	loc, err := locationParam(c, h.timeProvider.Location())
	if err != nil {
		respondError(c, h.logger, "Invalid timezone", err)
		return
	}

	webinars, err := h.scheduleUseCase.Upcoming(c.Request.Context(), limitParam(c, DefaultUpcomingLimit))
	if err != nil {
		respondError(c, h.logger, "Failed to list upcoming webinars", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWebinarListResponse(webinars, loc))
}

// Past handles GET /api/webinars/past?limit=&q=&tz=
func (h *ScheduleHandler) Past(c *gin.Context) {
	loc, err := locationParam(c, h.timeProvider.Location())
	if err != nil {
		respondError(c, h.logger, "Invalid timezone", err)
		return
	}

	webinars, err := h.scheduleUseCase.Past(c.Request.Context(), c.Query("q"), limitParam(c, DefaultPastLimit))
	if err != nil {
		respondError(c, h.logger, "Failed to list past webinars", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWebinarListResponse(webinars, loc))
}

// Next handles GET /api/webinars/next?tz=
func (h *ScheduleHandler) Next(c *gin.Context) {
	loc, err := locationParam(c, h.timeProvider.Location())
	if err != nil {
		respondError(c, h.logger, "Invalid timezone", err)
		return
	}

	next, err := h.scheduleUseCase.Next(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to get next webinar", err)
		return
	}

	c.JSON(http.StatusOK, dto.NextWebinarResponse{
		Webinar:   dto.NewWebinarResponse(next.Webinar, loc),
		Countdown: dto.NewCountdownResponse(next.Countdown),
	})
}

// Get handles GET /api/webinars/:id?tz=
func (h *ScheduleHandler) Get(c *gin.Context) {
	loc, err := locationParam(c, h.timeProvider.Location())
	if err != nil {
		respondError(c, h.logger, "Invalid timezone", err)
		return
	}

	id := c.Param("id")
	webinar, err := h.scheduleUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to get webinar", err)
		return
	}

	links, err := h.scheduleUseCase.CalendarLinks(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to build calendar links", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWebinarResponse(webinar, loc).WithCalendarLinks(links))
}

// CalendarLink handles GET /api/webinars/:id/calendar/:provider
func (h *ScheduleHandler) CalendarLink(c *gin.Context) {
	provider := entity.CalendarProvider(c.Param("provider"))

	link, err := h.scheduleUseCase.CalendarLink(c.Request.Context(), c.Param("id"), provider)
	if err != nil {
		respondError(c, h.logger, "Failed to build calendar link", err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarLinkResponse{Provider: string(provider), URL: link})
}

// limitParam reads ?limit=, falling back to def when missing or not a positive integer
func limitParam(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
