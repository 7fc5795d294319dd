package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parikshamitra/internal/app/db"
)

// PgxStore is the PostgreSQL-backed Store implementation.
type PgxStore struct {
	pool *pgxpool.Pool
}

// NewPgxStore wraps the given connection pool in a Store.
func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	return &PgxStore{pool: pool}
}

const userColumns = `id::text, name, email, password_hash, role, avatar_url, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account record. The unique index on lower(email)
// rejects the losing side of a concurrent duplicate registration.
func (s *PgxStore) Create(ctx context.Context, params CreateParams) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		params.Name, params.Email, params.PasswordHash, params.Role,
	)

	u, err := scanUser(row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail fetches the record whose normalized email matches.
func (s *PgxStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(email) = lower($1)`,
		email,
	)
	return scanUser(row)
}

// GetByID fetches the record with the given id.
func (s *PgxStore) GetByID(ctx context.Context, id string) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1::uuid`,
		id,
	)

	u, err := scanUser(row)
	if err != nil {
		// An id that is not a valid UUID cannot reference any record.
		if !errors.Is(err, ErrNotFound) && isInvalidUUID(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdatePassword replaces the stored password hash.
func (s *PgxStore) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1::uuid`,
		id, passwordHash,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return ErrNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile replaces name and avatar key and returns the updated record.
func (s *PgxStore) UpdateProfile(ctx context.Context, id string, name string, avatarURL string) (*User, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, avatar_url = $3, updated_at = now()
		WHERE id = $1::uuid
		RETURNING `+userColumns,
		id, name, avatarURL,
	)

	u, err := scanUser(row)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && isInvalidUUID(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// isInvalidUUID checks for the Postgres invalid_text_representation error
// (code 22P02) raised when casting a malformed id to uuid.
func isInvalidUUID(err error) bool {
	return db.IsInvalidTextRepresentation(err)
}
