package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type pgPlaylistRepository struct {
	db *sqlx.DB
}

// NewPlaylistRepository creates and returns a new PostgreSQL-based playlist repository.
func NewPlaylistRepository(db *sqlx.DB) domain.PlaylistRepository {
	return &pgPlaylistRepository{db: db}
}

// Create inserts a new playlist with empty membership. A foreign-key
// violation on user_id is mapped to ErrUserNotFound.
func (r *pgPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `INSERT INTO playlists (id, name, user_id, created_at)
	          VALUES (:id, :name, :user_id, :created_at)`

	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, playlist)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return err
	}
	if playlist.Songs == nil {
		playlist.Songs = []domain.Song{}
	}
	return nil
}

// GetByID returns the playlist with its full membership loaded, or nil if no
// such playlist exists. Duplicate memberships come back as repeated entries.
func (r *pgPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	playlist := &domain.Playlist{}
	query := `SELECT id, name, user_id, created_at FROM playlists WHERE id = $1`
	err := r.db.GetContext(ctx, playlist, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadSongs(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (r *pgPlaylistRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM playlists WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// AddSong appends one membership row. Each call inserts a fresh row keyed by
// its own id, so concurrent adds to the same playlist cannot lose each other
// and repeated adds of the same song accumulate.
func (r *pgPlaylistRepository) AddSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	query := `INSERT INTO playlist_songs (id, playlist_id, song_id, added_at)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), playlistID, songID, time.Now())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrPlaylistNotFound
		}
		return err
	}
	return nil
}

func (r *pgPlaylistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	playlists := []domain.Playlist{}
	query := `SELECT id, name, user_id, created_at FROM playlists WHERE user_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &playlists, query, userID)
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		if err := r.loadSongs(ctx, &playlists[i]); err != nil {
			return nil, err
		}
	}
	return playlists, nil
}

// Delete removes the playlist. Membership rows go with it via the store's
// cascade rule.
func (r *pgPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM playlists WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *pgPlaylistRepository) loadSongs(ctx context.Context, playlist *domain.Playlist) error {
	songs := []domain.Song{}
	query := `SELECT s.* FROM songs s
	          JOIN playlist_songs ps ON s.id = ps.song_id
	          WHERE ps.playlist_id = $1 ORDER BY ps.added_at`
	if err := r.db.SelectContext(ctx, &songs, query, playlist.ID); err != nil {
		return err
	}
	playlist.Songs = songs
	return nil
}
