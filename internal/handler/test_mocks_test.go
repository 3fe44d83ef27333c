package handler_test

import (
	"context"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSongService struct {
	mock.Mock
}

func (m *MockSongService) Add(ctx context.Context, req dto.SongRequest) (*domain.Song, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongService) Update(ctx context.Context, id uuid.UUID, req dto.SongRequest) (*domain.Song, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongService) Search(ctx context.Context, query, searchType string) ([]domain.Song, error) {
	args := m.Called(ctx, query, searchType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongService) SongsByArtist(ctx context.Context, artistUserID uuid.UUID) ([]domain.Song, error) {
	args := m.Called(ctx, artistUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongService) Recommend(ctx context.Context, genre string) ([]domain.Song, error) {
	args := m.Called(ctx, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockSongService) List(ctx context.Context) ([]domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Create(ctx context.Context, name string, userID uuid.UUID) (*domain.Playlist, error) {
	args := m.Called(ctx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Add(ctx context.Context, req dto.RatingRequest) (*domain.Rating, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingService) BySong(ctx context.Context, songID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingService) ByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}
