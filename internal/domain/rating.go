package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Rating is immutable once stored. A user may rate the same song more than
// once.
type Rating struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Rating    int       `json:"rating" db:"rating"`
	Review    string    `json:"review" db:"review"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	SongID    uuid.UUID `json:"song_id" db:"song_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	FindBySong(ctx context.Context, songID uuid.UUID) ([]Rating, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Rating, error)
}
