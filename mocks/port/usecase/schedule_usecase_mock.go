package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
)

// MockScheduleUseCase is a testify mock of usecase.ScheduleUseCase
type MockScheduleUseCase struct {
	mock.Mock
}

func (m *MockScheduleUseCase) Upcoming(ctx context.Context, limit int) ([]*entity.Webinar, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Webinar), args.Error(1)
}

func (m *MockScheduleUseCase) Past(ctx context.Context, query string, limit int) ([]*entity.Webinar, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Webinar), args.Error(1)
}

func (m *MockScheduleUseCase) Next(ctx context.Context) (*usecase.NextWebinar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.NextWebinar), args.Error(1)
}

func (m *MockScheduleUseCase) Get(ctx context.Context, id string) (*entity.Webinar, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Webinar), args.Error(1)
}

func (m *MockScheduleUseCase) CalendarLink(ctx context.Context, id string, provider entity.CalendarProvider) (string, error) {
	args := m.Called(ctx, id, provider)
	return args.String(0), args.Error(1)
}

func (m *MockScheduleUseCase) CalendarLinks(ctx context.Context, id string) (map[entity.CalendarProvider]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.CalendarProvider]string), args.Error(1)
}
