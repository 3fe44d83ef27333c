package repository

import (
	"context"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type pgRatingRepository struct {
	db *sqlx.DB
}

// NewRatingRepository creates and returns a new PostgreSQL-based rating repository.
func NewRatingRepository(db *sqlx.DB) domain.RatingRepository {
	return &pgRatingRepository{db: db}
}

// Create inserts a new rating. Foreign-key violations on user_id or song_id
// are mapped to the matching not-found error so a rating can never point at
// a row that does not exist.
func (r *pgRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (id, rating, review, user_id, song_id, created_at)
	          VALUES (:id, :rating, :review, :user_id, :song_id, :created_at)`

	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, rating)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "ratings_song_id_fkey" {
				return domain.ErrSongNotFound
			}
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *pgRatingRepository) FindBySong(ctx context.Context, songID uuid.UUID) ([]domain.Rating, error) {
	ratings := []domain.Rating{}
	query := `SELECT * FROM ratings WHERE song_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &ratings, query, songID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *pgRatingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Rating, error) {
	ratings := []domain.Rating{}
	query := `SELECT * FROM ratings WHERE user_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &ratings, query, userID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
