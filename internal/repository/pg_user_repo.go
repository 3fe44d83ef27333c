package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/anuragk04/melodify/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type pgUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates and returns a new PostgreSQL-based user repository.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &pgUserRepository{db: db}
}

// Create inserts a new user record. Unique violations on the username or
// email columns are mapped to the matching domain error so callers can tell
// which field collided.
func (r *pgUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
	          VALUES (:id, :username, :email, :password_hash, :created_at, :updated_at)`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return mapUserConstraintErr(err)
	}
	return nil
}

// GetByID returns the user with the given id, or nil if no such row exists.
func (r *pgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, user, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername returns the user with the given username, or nil if absent.
// Usernames are unique so at most one row matches.
func (r *pgUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT * FROM users WHERE username = $1`
	err := r.db.GetContext(ctx, user, query, username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *pgUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *pgUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	err := r.db.GetContext(ctx, &exists, query, username)
	return exists, err
}

func (r *pgUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

// Update overwrites all mutable fields of the row at user.ID. The same
// unique-constraint mapping as Create applies, so a profile update cannot
// silently collide two users onto one username or email.
func (r *pgUserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	query := `UPDATE users SET username = :username, email = :email,
	          password_hash = :password_hash, updated_at = :updated_at
	          WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return mapUserConstraintErr(err)
	}
	return nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *pgUserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT * FROM users ORDER BY created_at`
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// mapUserConstraintErr translates pq unique violations into domain errors
// based on the violated constraint.
func mapUserConstraintErr(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "email") {
			return domain.ErrEmailTaken
		}
		return domain.ErrUsernameTaken
	}
	return err
}
