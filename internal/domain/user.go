// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. Anonymous accounts carry a synthetic email and
// an empty password hash, and can never authenticate with a password.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Anonymous    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	// Create inserts a new user. Returns ErrDuplicateEmail if the email is
	// already registered.
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// TouchLastLogin records a successful login at the given time.
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
