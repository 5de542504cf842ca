package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
)

// MockCountdownUseCase is a testify mock of usecase.CountdownUseCase.
// Configure Run with .Run(func(args mock.Arguments)) to call the render function.
type MockCountdownUseCase struct {
	mock.Mock
}

func (m *MockCountdownUseCase) Snapshot(target time.Time) entity.Countdown {
	args := m.Called(target)
	return args.Get(0).(entity.Countdown)
}

func (m *MockCountdownUseCase) Run(ctx context.Context, target time.Time, render usecase.RenderFunc) error {
	args := m.Called(ctx, target, render)
	return args.Error(0)
}
