package user

import (
	"context"
	"errors"
)

// Store errors. The pgx implementation maps driver-level failures onto these
// so handlers never inspect database errors directly.
var (
	// ErrNotFound indicates that no record matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a record with the same normalized email
	// already exists. Under concurrent registration exactly one insert
	// succeeds; every loser observes this error.
	ErrEmailTaken = errors.New("email already registered")
)

// CreateParams carries the fields required to insert a new account.
// Email must already be normalized and PasswordHash already hashed.
type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// Store defines the persistence operations the handlers depend on.
//
// Contract:
//   - Create inserts a record and returns it with store-assigned id and
//     timestamps; a duplicate normalized email yields ErrEmailTaken.
//   - GetByEmail looks up by normalized email; GetByID by opaque id.
//     Both return ErrNotFound when absent.
//   - UpdatePassword replaces the stored hash; UpdateProfile replaces name
//     and avatar key, returning the updated record.
//
// All methods honor context cancellation.
type Store interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateProfile(ctx context.Context, id string, name string, avatarURL string) (*User, error)
}
