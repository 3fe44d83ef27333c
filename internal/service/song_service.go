package service

import (
	"context"
	"strings"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/dto"
	"github.com/google/uuid"
)

type SongService interface {
	Add(ctx context.Context, req dto.SongRequest) (*domain.Song, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SongRequest) (*domain.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query, searchType string) ([]domain.Song, error)
	SongsByArtist(ctx context.Context, artistUserID uuid.UUID) ([]domain.Song, error)
	Recommend(ctx context.Context, genre string) ([]domain.Song, error)
	List(ctx context.Context) ([]domain.Song, error)
}

type songService struct {
	repo domain.SongRepository
}

func NewSongService(repo domain.SongRepository) SongService {
	return &songService{repo: repo}
}

func (s *songService) Add(ctx context.Context, req dto.SongRequest) (*domain.Song, error) {
	song := &domain.Song{
		ID:           uuid.New(),
		Title:        req.Title,
		Artist:       req.Artist,
		Genre:        req.Genre,
		Album:        req.Album,
		URL:          req.URL,
		ArtistUserID: req.ArtistUserID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// Update overwrites title, artist, genre, album and url. The owning account
// reference stays whatever the stored row had, even if the payload carried a
// different one.
func (s *songService) Update(ctx context.Context, id uuid.UUID, req dto.SongRequest) (*domain.Song, error) {
	song, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, domain.ErrSongNotFound
	}

	song.Title = req.Title
	song.Artist = req.Artist
	song.Genre = req.Genre
	song.Album = req.Album
	song.URL = req.URL

	if err := s.repo.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *songService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrSongNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Search dispatches on the type token, matched case-insensitively. The query
// itself is matched exactly against stored values.
func (s *songService) Search(ctx context.Context, query, searchType string) ([]domain.Song, error) {
	switch strings.ToLower(searchType) {
	case "artist":
		return s.repo.FindByArtist(ctx, query)
	case "genre":
		return s.repo.FindByGenre(ctx, query)
	case "album":
		return s.repo.FindByAlbum(ctx, query)
	default:
		return nil, domain.ErrInvalidSearchType
	}
}

func (s *songService) SongsByArtist(ctx context.Context, artistUserID uuid.UUID) ([]domain.Song, error) {
	return s.repo.FindByArtistUser(ctx, artistUserID)
}

// Recommend is a plain genre filter, kept as its own operation to match the
// public API.
func (s *songService) Recommend(ctx context.Context, genre string) ([]domain.Song, error) {
	return s.repo.FindByGenre(ctx, genre)
}

func (s *songService) List(ctx context.Context) ([]domain.Song, error) {
	return s.repo.List(ctx)
}
