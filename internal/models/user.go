// ABOUTME: User account model and the opaque login session identity.
// ABOUTME: Sessions carry only id and username, never the password hash.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is a SHA-256 hex digest;
// the plaintext password is never stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a User with a generated UUID and current timestamp.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

// Session is the opaque identity handed to the caller after login.
// It is what gets persisted in the keyring between CLI invocations.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
