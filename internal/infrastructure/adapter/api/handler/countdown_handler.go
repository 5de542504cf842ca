package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/dto"
)

// CountdownHandler serves countdown snapshots and live streams
type CountdownHandler struct {
	countdownUseCase usecase.CountdownUseCase
	scheduleUseCase  usecase.ScheduleUseCase
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
}

// NewCountdownHandler creates a new countdown handler instance
func NewCountdownHandler(
	countdownUseCase usecase.CountdownUseCase,
	scheduleUseCase usecase.ScheduleUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CountdownHandler {
	return &CountdownHandler{
		countdownUseCase: countdownUseCase,
		scheduleUseCase:  scheduleUseCase,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Snapshot handles GET /api/countdown?target=
func (h *CountdownHandler) Snapshot(c *gin.Context) {
	target, ok := h.target(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewCountdownResponse(h.countdownUseCase.Snapshot(target)))
}

// Stream handles GET /api/countdown/stream?target=
func (h *CountdownHandler) Stream(c *gin.Context) {
	target, ok := h.target(c)
	if !ok {
		return
	}

	stream(c, h.logger, "countdown",
		func(ctx context.Context, send func(entity.Countdown)) error {
			return h.countdownUseCase.Run(ctx, target, func(cd entity.Countdown) { send(cd) })
		},
		func(cd entity.Countdown) any { return dto.NewCountdownResponse(cd) },
	)
}

// target reads the target query parameter; without one the next webinar is used.
// It writes the error response itself and reports false on failure.
func (h *CountdownHandler) target(c *gin.Context) (time.Time, bool) {
	if raw := c.Query("target"); raw != "" {
		target, err := entity.ParseInstantIn(raw, h.timeProvider.Location())
		if err != nil {
			respondError(c, h.logger, "Invalid countdown target", err)
			return time.Time{}, false
		}
		return target, true
	}

	next, err := h.scheduleUseCase.Next(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "No countdown target", err)
		return time.Time{}, false
	}
	return next.Webinar.ScheduledAt, true
}
