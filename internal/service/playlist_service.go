package service

import (
	"context"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
)

type PlaylistService interface {
	Create(ctx context.Context, name string, userID uuid.UUID) (*domain.Playlist, error)
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*domain.Playlist, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type playlistService struct {
	repo     domain.PlaylistRepository
	songRepo domain.SongRepository
}

func NewPlaylistService(repo domain.PlaylistRepository, songRepo domain.SongRepository) PlaylistService {
	return &playlistService{repo: repo, songRepo: songRepo}
}

func (s *playlistService) Create(ctx context.Context, name string, userID uuid.UUID) (*domain.Playlist, error) {
	playlist := &domain.Playlist{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: time.Now(),
		Songs:     []domain.Song{},
	}
	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddSong appends one membership entry and returns the playlist with its
// membership reloaded. Adding the same song again adds another entry.
func (s *playlistService) AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*domain.Playlist, error) {
	exists, err := s.repo.ExistsByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPlaylistNotFound
	}

	exists, err = s.songRepo.ExistsByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSongNotFound
	}

	if err := s.repo.AddSong(ctx, playlistID, songID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, playlistID)
}

func (s *playlistService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *playlistService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPlaylistNotFound
	}
	return s.repo.Delete(ctx, id)
}
