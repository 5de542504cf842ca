package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
)

var (
	monday = time.Date(2025, 1, 20, 9, 30, 0, 0, time.UTC)
	slot   = entity.WeeklySlot{Weekday: time.Thursday, Hour: 14, Location: time.UTC}
)

func TestWebinar_ToEntity(t *testing.T) {
	inactive := false

	t.Run("should place record on the weekly slot", func(t *testing.T) {
		record := Webinar{ID: "node-apis", Title: "Building Scalable APIs", WeekOffset: 1, MaxCapacity: 500, RegistrationsCount: 189}

		webinar, err := record.ToEntity(slot, monday)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 30, 14, 0, 0, 0, time.UTC), webinar.ScheduledAt)
		assert.Equal(t, DefaultDurationMinutes, webinar.DurationMinutes)
		assert.Equal(t, 311, webinar.AvailableSpots())
		assert.True(t, webinar.IsActive)
	})

	t.Run("should place negative offsets in the past", func(t *testing.T) {
		record := Webinar{ID: "web-perf", Title: "Web Performance", WeekOffset: -1, ReplayURL: "https://example.com/r", IsActive: &inactive}

		webinar, err := record.ToEntity(slot, monday)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 16, 14, 0, 0, 0, time.UTC), webinar.ScheduledAt)
		assert.False(t, webinar.IsActive)
		assert.True(t, webinar.HasReplay())
	})

	t.Run("should parse explicit instants in the slot zone", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		record := Webinar{ID: "ts", Title: "TypeScript Deep Dive", ScheduledAt: "2025-02-06T14:00", DurationMinutes: 90}

		webinar, err := record.ToEntity(entity.WeeklySlot{Location: ny}, monday)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 6, 19, 0, 0, 0, time.UTC), webinar.ScheduledAt.UTC())
		assert.Equal(t, 90, webinar.DurationMinutes)
	})

	t.Run("should reject unparseable instants", func(t *testing.T) {
		record := Webinar{ID: "bad", Title: "Bad", ScheduledAt: "next thursday"}

		webinar, err := record.ToEntity(slot, monday)

		assert.Nil(t, webinar)
		assert.ErrorIs(t, err, errs.ErrInvalidSchedule)
		assert.ErrorIs(t, err, errs.ErrInvalidInstant)
	})

	t.Run("should reject negative durations", func(t *testing.T) {
		record := Webinar{ID: "neg", Title: "Negative", DurationMinutes: -30}

		_, err := record.ToEntity(slot, monday)

		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
	})
}
