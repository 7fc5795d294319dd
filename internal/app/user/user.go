/*
Package user contains the credential-store model and persistence for accounts.

A User is the single persistent identity record: display name, unique
lowercased email, a bcrypt password hash that never leaves the server, and a
role driving route-level authorization.
*/
package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role is the authorization level attached to an account.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// SelfServe reports whether r may be chosen during self-registration.
// Admin accounts are provisioned out of band.
func (r Role) SelfServe() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a single account in the credential store.
// PasswordHash is excluded from JSON serialization; it must never
// reach a client in any response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BcryptCost is the work factor applied when hashing passwords. The salt and
// cost are embedded in the hash output, so verification needs no side channel.
var BcryptCost = bcrypt.DefaultCost

// NormalizeEmail lowercases and trims an email address. All store lookups and
// the uniqueness invariant operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isBcryptHash reports whether s already looks like a bcrypt-encoded hash.
// bcrypt.Cost parses the "$2a$.." prefix and fails on anything else.
func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

// SetPassword hashes the given plaintext and stores the result in PasswordHash.
// The hook is idempotent: a value that is already a bcrypt hash is left
// untouched, so unrelated updates cannot double-hash a stored credential.
func (u *User) SetPassword(plaintext string) error {
	if isBcryptHash(plaintext) {
		u.PasswordHash = plaintext
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword verifies plaintext against the stored hash.
// The underlying bcrypt compare is constant-time in the hash length.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

// Public returns a copy safe to embed in API responses: identity and role
// only, with the zero PasswordHash field guaranteed.
func (u *User) Public() *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
