package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// MockWebinarRepository is a testify mock of persistence.WebinarRepository
type MockWebinarRepository struct {
	mock.Mock
}

func (m *MockWebinarRepository) List(ctx context.Context) ([]*entity.Webinar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Webinar), args.Error(1)
}

func (m *MockWebinarRepository) GetByID(ctx context.Context, id string) (*entity.Webinar, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Webinar), args.Error(1)
}
