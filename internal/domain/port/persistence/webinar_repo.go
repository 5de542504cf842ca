package persistence

import (
	"context"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// WebinarRepository gives read-only access to the webinar schedule
type WebinarRepository interface {
	// List returns every configured webinar, active or not, with start instants resolved
	// against the current time
	//
	// Possible errors:
	// - ErrInvalidSchedule: If a configured webinar cannot be placed on the schedule
	List(ctx context.Context) ([]*entity.Webinar, error)

	// GetByID retrieves a webinar by its identifier
	//
	// Possible errors:
	// - ErrWebinarNotFound: If no webinar has the given ID
	// - ErrInvalidSchedule: If the webinar cannot be placed on the schedule
	GetByID(ctx context.Context, id string) (*entity.Webinar, error)
}
