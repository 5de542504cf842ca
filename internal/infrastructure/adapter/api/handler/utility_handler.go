package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/dto"
)

// defaultEventMinutes is used when a calendar request has neither end nor duration
const defaultEventMinutes = 60

// UtilityHandler exposes the formatting, timezone and calendar helpers
type UtilityHandler struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	location     string
}

// NewUtilityHandler creates a new utility handler instance.
// location is the default calendar event location.
func NewUtilityHandler(timeProvider coreport.TimeProvider, logger coreport.Logger, location string) *UtilityHandler {
	if location == "" {
		location = entity.DefaultWebinarLocation
	}
	return &UtilityHandler{
		timeProvider: timeProvider,
		logger:       logger,
		location:     location,
	}
}

// Health handles GET /health
func (h *UtilityHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Time:     h.timeProvider.Now().UTC().Format(time.RFC3339),
		Timezone: h.timeProvider.Location().String(),
	})
}

// FormatDateTime handles GET /api/format/datetime?at=&tz=
func (h *UtilityHandler) FormatDateTime(c *gin.Context) {
	loc, err := locationParam(c, h.timeProvider.Location())
	if err != nil {
		respondError(c, h.logger, "Invalid timezone", err)
		return
	}

	at, err := entity.ParseInstantIn(c.Query("at"), loc)
	if err != nil {
		respondError(c, h.logger, "Invalid instant", err)
		return
	}

	c.JSON(http.StatusOK, dto.DateTimeResponse{
		Date:     entity.FormatDateIn(at, loc),
		Time:     entity.FormatTimeIn(at, loc),
		DateTime: entity.FormatDateTimeIn(at, loc),
		Timezone: loc.String(),
	})
}

// FormatRelative handles GET /api/format/relative?at=&tz=
func (h *UtilityHandler) FormatRelative(c *gin.Context) {
	loc, err := locationParam(c, h.timeProvider.Location())
	if err != nil {
		respondError(c, h.logger, "Invalid timezone", err)
		return
	}

	at, err := entity.ParseInstantIn(c.Query("at"), loc)
	if err != nil {
		respondError(c, h.logger, "Invalid instant", err)
		return
	}

	c.JSON(http.StatusOK, dto.RelativeTimeResponse{
		Relative: entity.RelativeTimeIn(at, h.timeProvider.Now(), loc),
	})
}

// FormatDuration handles GET /api/format/duration?minutes=
func (h *UtilityHandler) FormatDuration(c *gin.Context) {
	minutes, err := strconv.Atoi(c.Query("minutes"))
	if err != nil {
		respondError(c, h.logger, "Invalid duration",
			fmt.Errorf("%w: minutes must be an integer", domainerr.ErrInvalidDuration))
		return
	}

	c.JSON(http.StatusOK, dto.FormattedResponse{Formatted: entity.FormatDuration(minutes)})
}

// FormatNumber handles GET /api/format/number?n=
func (h *UtilityHandler) FormatNumber(c *gin.Context) {
	n, err := strconv.ParseInt(c.Query("n"), 10, 64)
	if err != nil {
		respondError(c, h.logger, "Invalid number",
			fmt.Errorf("%w: n must be an integer", domainerr.ErrInvalidNumber))
		return
	}

	c.JSON(http.StatusOK, dto.FormattedResponse{Formatted: entity.FormatNumber(n)})
}

// ListTimezones handles GET /api/timezones
func (h *UtilityHandler) ListTimezones(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTimezonesResponse(entity.DetectTimezone(), entity.ListTimezones()))
}

// CalendarLink handles POST /api/calendar-links
func (h *UtilityHandler) CalendarLink(c *gin.Context) {
	var req dto.CalendarLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid calendar link request",
			fmt.Errorf("%w: %v", domainerr.ErrInvalidRequest, err))
		return
	}

	event, err := h.calendarEvent(req)
	if err != nil {
		respondError(c, h.logger, "Invalid calendar link request", err)
		return
	}

	provider := entity.CalendarProvider(req.Provider)
	link := entity.BuildCalendarLink(event, provider)
	if link == "" {
		respondError(c, h.logger, "Unsupported calendar provider",
			fmt.Errorf("%w %q", domainerr.ErrUnsupportedProvider, req.Provider))
		return
	}

	c.JSON(http.StatusOK, dto.CalendarLinkResponse{Provider: string(provider), URL: link})
}

func (h *UtilityHandler) calendarEvent(req dto.CalendarLinkRequest) (entity.CalendarEvent, error) {
	loc := h.timeProvider.Location()

	start, err := entity.ParseInstantIn(req.Start, loc)
	if err != nil {
		return entity.CalendarEvent{}, err
	}

	location := req.Location
	if location == "" {
		location = h.location
	}

	if req.End != "" {
		end, err := entity.ParseInstantIn(req.End, loc)
		if err != nil {
			return entity.CalendarEvent{}, err
		}
		return entity.CalendarEvent{
			Title:       req.Title,
			Description: req.Description,
			Location:    location,
			Start:       start,
			End:         end,
		}, nil
	}

	minutes := req.DurationMinutes
	if minutes == 0 {
		minutes = defaultEventMinutes
	}
	return entity.NewCalendarEvent(req.Title, req.Description, location, start, minutes), nil
}
