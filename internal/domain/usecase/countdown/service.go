package countdown

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
)

// DefaultTickInterval is how often a live countdown re-renders
const DefaultTickInterval = coreport.Second

// Service implements usecase.CountdownUseCase
type Service struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	interval     coreport.Duration
}

// NewService creates a countdown service ticking every interval.
// A non-positive interval falls back to DefaultTickInterval.
func NewService(
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	interval coreport.Duration,
) usecase.CountdownUseCase {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Service{
		timeProvider: timeProvider,
		logger:       logger,
		interval:     interval,
	}
}

// Snapshot returns the countdown to target as of the provider's now
func (s *Service) Snapshot(target time.Time) entity.Countdown {
	return entity.NewCountdown(target, s.timeProvider.Now())
}

// Run renders immediately and then on every tick until ctx is done
func (s *Service) Run(ctx context.Context, target time.Time, render usecase.RenderFunc) error {
	ticker := s.timeProvider.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug("Countdown started", map[string]any{
		"target":      target,
		"interval_ms": s.interval.Std().Milliseconds(),
	})

	render(s.Snapshot(target))

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Countdown stopped", map[string]any{
				"target": target,
				"reason": ctx.Err().Error(),
			})
			return ctx.Err()
		case <-ticker.C():
			render(s.Snapshot(target))
		}
	}
}
