package mocks

import (
	"context"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) List(ctx context.Context) ([]domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongRepository) FindByArtist(ctx context.Context, artist string) ([]domain.Song, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongRepository) FindByGenre(ctx context.Context, genre string) ([]domain.Song, error) {
	args := m.Called(ctx, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongRepository) FindByAlbum(ctx context.Context, album string) ([]domain.Song, error) {
	args := m.Called(ctx, album)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongRepository) FindByArtistUser(ctx context.Context, artistUserID uuid.UUID) ([]domain.Song, error) {
	args := m.Called(ctx, artistUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}
