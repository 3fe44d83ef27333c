package mocks

import (
	"context"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) FindBySong(ctx context.Context, songID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}
