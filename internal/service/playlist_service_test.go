package service_test

import (
	"context"
	"testing"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/mocks"
	"github.com/anuragk04/melodify/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)
	userID := uuid.New()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Playlist")).Return(nil)

	playlist, err := svc.Create(ctx, "Road Trip", userID)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", playlist.Name)
	assert.Equal(t, userID, playlist.UserID)
	assert.Empty(t, playlist.Songs)
}

func TestPlaylistService_AddSong(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)

	playlistID := uuid.New()
	songID := uuid.New()
	song := domain.Song{ID: songID, Title: "Hit"}

	repo.On("ExistsByID", ctx, playlistID).Return(true, nil)
	songRepo.On("ExistsByID", ctx, songID).Return(true, nil)
	repo.On("AddSong", ctx, playlistID, songID).Return(nil)
	repo.On("GetByID", ctx, playlistID).Return(&domain.Playlist{
		ID:    playlistID,
		Songs: []domain.Song{song},
	}, nil)

	playlist, err := svc.AddSong(ctx, playlistID, songID)
	require.NoError(t, err)
	assert.Len(t, playlist.Songs, 1)
	repo.AssertExpectations(t)
}

func TestPlaylistService_AddSong_DuplicatesKept(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)

	playlistID := uuid.New()
	songID := uuid.New()
	song := domain.Song{ID: songID, Title: "Hit"}

	repo.On("ExistsByID", ctx, playlistID).Return(true, nil)
	songRepo.On("ExistsByID", ctx, songID).Return(true, nil)
	repo.On("AddSong", ctx, playlistID, songID).Return(nil).Twice()
	repo.On("GetByID", ctx, playlistID).Return(&domain.Playlist{
		ID:    playlistID,
		Songs: []domain.Song{song},
	}, nil).Once()
	repo.On("GetByID", ctx, playlistID).Return(&domain.Playlist{
		ID:    playlistID,
		Songs: []domain.Song{song, song},
	}, nil).Once()

	_, err := svc.AddSong(ctx, playlistID, songID)
	require.NoError(t, err)

	// Adding the same song again yields a second membership entry.
	playlist, err := svc.AddSong(ctx, playlistID, songID)
	require.NoError(t, err)
	assert.Len(t, playlist.Songs, 2)
	repo.AssertNumberOfCalls(t, "AddSong", 2)
}

func TestPlaylistService_AddSong_PlaylistNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)

	playlistID := uuid.New()
	repo.On("ExistsByID", ctx, playlistID).Return(false, nil)

	_, err := svc.AddSong(ctx, playlistID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	repo.AssertNotCalled(t, "AddSong", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_AddSong_SongNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)

	playlistID := uuid.New()
	songID := uuid.New()
	repo.On("ExistsByID", ctx, playlistID).Return(true, nil)
	songRepo.On("ExistsByID", ctx, songID).Return(false, nil)

	_, err := svc.AddSong(ctx, playlistID, songID)
	assert.ErrorIs(t, err, domain.ErrSongNotFound)
	repo.AssertNotCalled(t, "AddSong", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_ListForUser(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)
	userID := uuid.New()

	playlists := []domain.Playlist{{Name: "Mine", UserID: userID}}
	repo.On("ListByUser", ctx, userID).Return(playlists, nil)

	got, err := svc.ListForUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, playlists, got)
}

func TestPlaylistService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockPlaylistRepository)
	songRepo := new(mocks.MockSongRepository)
	svc := service.NewPlaylistService(repo, songRepo)
	id := uuid.New()

	repo.On("ExistsByID", ctx, id).Return(false, nil)
	err := svc.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	repo.AssertNotCalled(t, "Delete", ctx, id)
}
