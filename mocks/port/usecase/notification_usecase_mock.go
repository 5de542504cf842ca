package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
)

// MockNotificationUseCase is a testify mock of usecase.NotificationUseCase
type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) Run(ctx context.Context, emit usecase.EmitFunc) error {
	args := m.Called(ctx, emit)
	return args.Error(0)
}
