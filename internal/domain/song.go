package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Song is a catalog entry. Artist is free text as displayed to listeners;
// ArtistUserID optionally links the song to an account and the two are not
// kept in sync.
type Song struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Artist       string     `json:"artist" db:"artist"`
	Genre        *string    `json:"genre" db:"genre"`
	Album        *string    `json:"album" db:"album"`
	URL          string     `json:"url" db:"url"`
	ArtistUserID *uuid.UUID `json:"artist_user_id" db:"artist_user_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id uuid.UUID) (*Song, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, song *Song) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Song, error)
	FindByArtist(ctx context.Context, artist string) ([]Song, error)
	FindByGenre(ctx context.Context, genre string) ([]Song, error)
	FindByAlbum(ctx context.Context, album string) ([]Song, error)
	FindByArtistUser(ctx context.Context, artistUserID uuid.UUID) ([]Song, error)
}
