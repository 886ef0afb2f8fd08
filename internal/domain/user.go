// internal/domain/user.go
package domain

import (
	"strings"
	"time"
)

// User represents a registered account. The password hash is never serialized
// outward (json:"-").
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"` // unique, stored lowercased and trimmed
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance with a normalized email.
func NewUser(name, email string) *User {
	return &User{
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeEmail lowercases and trims an email address. All lookups and
// uniqueness checks go through the normalized form so that duplicate
// registration with different casing or whitespace is rejected.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
