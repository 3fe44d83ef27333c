package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Playlist holds an unordered multiset of song memberships. Adding the same
// song twice yields two membership rows.
type Playlist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Songs []Song `json:"songs"`
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Playlist, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
