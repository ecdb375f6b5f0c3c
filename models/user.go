package models

import "time"

// User represents an account entity used for authentication and as the owner
// of a watchlist and a backlog.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned at creation (UUIDv7).
	// It never changes for the lifetime of the account.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. It is stored trimmed and
	// lower-cased.
	Email string `json:"email"`

	// PasswordHash is the salted one-way (bcrypt) hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the client-facing projection of the user.
// The projection type has no password field at all, so it cannot leak
// the hash regardless of how it is encoded.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the user projection returned by the API.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
