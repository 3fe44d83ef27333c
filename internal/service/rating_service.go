package service

import (
	"context"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/anuragk04/melodify/internal/dto"
	"github.com/google/uuid"
)

type RatingService interface {
	Add(ctx context.Context, req dto.RatingRequest) (*domain.Rating, error)
	BySong(ctx context.Context, songID uuid.UUID) ([]domain.Rating, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error)
}

type ratingService struct {
	repo     domain.RatingRepository
	songRepo domain.SongRepository
}

func NewRatingService(repo domain.RatingRepository, songRepo domain.SongRepository) RatingService {
	return &ratingService{repo: repo, songRepo: songRepo}
}

// Add persists a rating as given. The 1..5 range is enforced at the boundary
// before this call; the referenced user and song are enforced by the store's
// foreign keys.
func (s *ratingService) Add(ctx context.Context, req dto.RatingRequest) (*domain.Rating, error) {
	rating := &domain.Rating{
		ID:        uuid.New(),
		Rating:    req.Rating,
		Review:    req.Review,
		UserID:    req.UserID,
		SongID:    req.SongID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// BySong returns all ratings for the song, failing if the song itself does
// not exist.
func (s *ratingService) BySong(ctx context.Context, songID uuid.UUID) ([]domain.Rating, error) {
	exists, err := s.songRepo.ExistsByID(ctx, songID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSongNotFound
	}
	return s.repo.FindBySong(ctx, songID)
}

func (s *ratingService) ByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	return s.repo.FindByUser(ctx, userID)
}
