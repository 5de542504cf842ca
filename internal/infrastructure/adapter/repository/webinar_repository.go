package repository

import (
	"context"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/model"
)

// ConfigWebinarRepository serves the schedule from configuration records.
// Start instants of slot-based records are resolved on every read so the schedule rolls forward.
type ConfigWebinarRepository struct {
	records      []model.Webinar
	slot         entity.WeeklySlot
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewConfigWebinarRepository validates the records and creates the repository.
// IDs must be unique and every record must convert at the current time.
func NewConfigWebinarRepository(
	records []model.Webinar,
	slot entity.WeeklySlot,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (persistence.WebinarRepository, error) {
	if slot.Location == nil {
		slot.Location = timeProvider.Location()
	}

	now := timeProvider.Now()
	seen := make(map[string]struct{}, len(records))

	for i := range records {
		id := records[i].ID
		if _, dup := seen[id]; dup {
			return nil, errs.NewScheduleError(id, "id", "duplicate", errs.ErrInvalidRequest)
		}
		seen[id] = struct{}{}

		if _, err := records[i].ToEntity(slot, now); err != nil {
			return nil, err
		}
	}

	stored := make([]model.Webinar, len(records))
	copy(stored, records)

	logger.Info("Webinar schedule loaded", map[string]any{
		"webinars": len(stored),
		"weekday":  slot.Weekday.String(),
		"timezone": slot.Location.String(),
	})

	return &ConfigWebinarRepository{
		records:      stored,
		slot:         slot,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// List returns all webinars in configuration order
func (r *ConfigWebinarRepository) List(ctx context.Context) ([]*entity.Webinar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now()
	webinars := make([]*entity.Webinar, 0, len(r.records))
	for i := range r.records {
		webinar, err := r.records[i].ToEntity(r.slot, now)
		if err != nil {
			r.logger.Error("Failed to resolve webinar", map[string]any{
				"webinar_id": r.records[i].ID,
				"error":      err.Error(),
			})
			return nil, err
		}
		webinars = append(webinars, webinar)
	}
	return webinars, nil
}

// GetByID returns one webinar or ErrWebinarNotFound
func (r *ConfigWebinarRepository) GetByID(ctx context.Context, id string) (*entity.Webinar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range r.records {
		if r.records[i].ID == id {
			return r.records[i].ToEntity(r.slot, r.timeProvider.Now())
		}
	}
	return nil, errs.ErrWebinarNotFound
}
