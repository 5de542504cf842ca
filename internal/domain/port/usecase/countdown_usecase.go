package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// RenderFunc receives each countdown value produced by a live countdown
type RenderFunc func(entity.Countdown)

// CountdownUseCase computes countdowns against the provider clock
type CountdownUseCase interface {
	// Snapshot returns the countdown to target as of now
	Snapshot(target time.Time) entity.Countdown

	// Run renders the countdown immediately and then once per tick until ctx is done.
	// It keeps ticking after the target has passed; every later tick renders the expired value.
	// It returns ctx.Err() when it stops.
	Run(ctx context.Context, target time.Time, render RenderFunc) error
}
