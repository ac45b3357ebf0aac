package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"companion/internal/domain"
)

// Create inserts a new user row.
func (d *DB) Create(ctx context.Context, u *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, is_anonymous, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Anonymous, u.CreatedAt, u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

// GetByEmail retrieves a user by email.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, is_anonymous, created_at, updated_at, last_login
		 FROM users WHERE email = $1`, email))
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, is_anonymous, created_at, updated_at, last_login
		 FROM users WHERE id = $1`, id))
}

// TouchLastLogin records a successful login time.
func (d *DB) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := d.sql.ExecContext(ctx,
		`UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`, id, at)
	return err
}

func (d *DB) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Anonymous,
		&u.CreatedAt, &u.UpdatedAt, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return &u, nil
}
