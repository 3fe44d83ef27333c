package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type pgSongRepository struct {
	db *sqlx.DB
}

// NewSongRepository creates and returns a new PostgreSQL-based song repository.
func NewSongRepository(db *sqlx.DB) domain.SongRepository {
	return &pgSongRepository{db: db}
}

func (r *pgSongRepository) Create(ctx context.Context, song *domain.Song) error {
	query := `INSERT INTO songs (id, title, artist, genre, album, url, artist_user_id, created_at, updated_at)
	          VALUES (:id, :title, :artist, :genre, :album, :url, :artist_user_id, :created_at, :updated_at)`

	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	if song.CreatedAt.IsZero() {
		song.CreatedAt = time.Now()
	}
	if song.UpdatedAt.IsZero() {
		song.UpdatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, song)
	return err
}

func (r *pgSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	song := &domain.Song{}
	query := `SELECT * FROM songs WHERE id = $1`
	err := r.db.GetContext(ctx, song, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

func (r *pgSongRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM songs WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// Update overwrites every column except artist_user_id, which stays bound to
// the row it was created with.
func (r *pgSongRepository) Update(ctx context.Context, song *domain.Song) error {
	song.UpdatedAt = time.Now()
	query := `UPDATE songs SET title = :title, artist = :artist, genre = :genre,
	          album = :album, url = :url, updated_at = :updated_at
	          WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, song)
	return err
}

func (r *pgSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM songs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *pgSongRepository) List(ctx context.Context) ([]domain.Song, error) {
	songs := []domain.Song{}
	query := `SELECT * FROM songs ORDER BY created_at`
	err := r.db.SelectContext(ctx, &songs, query)
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// Field lookups are case-sensitive exact matches on stored values.

func (r *pgSongRepository) FindByArtist(ctx context.Context, artist string) ([]domain.Song, error) {
	return r.findByField(ctx, "artist", artist)
}

func (r *pgSongRepository) FindByGenre(ctx context.Context, genre string) ([]domain.Song, error) {
	return r.findByField(ctx, "genre", genre)
}

func (r *pgSongRepository) FindByAlbum(ctx context.Context, album string) ([]domain.Song, error) {
	return r.findByField(ctx, "album", album)
}

func (r *pgSongRepository) FindByArtistUser(ctx context.Context, artistUserID uuid.UUID) ([]domain.Song, error) {
	songs := []domain.Song{}
	query := `SELECT * FROM songs WHERE artist_user_id = $1`
	err := r.db.SelectContext(ctx, &songs, query, artistUserID)
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *pgSongRepository) findByField(ctx context.Context, column, value string) ([]domain.Song, error) {
	songs := []domain.Song{}
	query := `SELECT * FROM songs WHERE ` + column + ` = $1`
	err := r.db.SelectContext(ctx, &songs, query, value)
	if err != nil {
		return nil, err
	}
	return songs, nil
}
