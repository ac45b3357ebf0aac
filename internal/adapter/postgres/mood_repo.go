package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"companion/internal/domain"
)

// MoodRepo implements mood persistence on DB. It is a separate type because
// DB.Create is taken by the user repository.
type MoodRepo struct {
	db *DB
}

// Moods returns the mood repository view of the database.
func (d *DB) Moods() *MoodRepo {
	return &MoodRepo{db: d}
}

// Create inserts a new mood entry.
func (r *MoodRepo) Create(ctx context.Context, e *domain.MoodEntry) error {
	_, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO mood_entries (id, user_id, mood, note, logged_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.UserID, string(e.Mood), e.Note, e.Timestamp,
	)
	return err
}

// List returns the owner's entries newest first. Bounds are inclusive; nil
// bounds are open.
func (r *MoodRepo) List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]domain.MoodEntry, error) {
	q := `SELECT id, user_id, mood, note, logged_at FROM mood_entries WHERE user_id = $1`
	args := []any{ownerID}
	if from != nil {
		args = append(args, *from)
		q += ` AND logged_at >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			q += ` AND logged_at <= $3`
		} else {
			q += ` AND logged_at <= $2`
		}
	}
	q += ` ORDER BY logged_at DESC`

	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.MoodEntry{}
	for rows.Next() {
		var e domain.MoodEntry
		var mood string
		if err := rows.Scan(&e.ID, &e.UserID, &mood, &e.Note, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Mood = domain.Mood(mood)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns one entry only if owned by ownerID.
func (r *MoodRepo) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.MoodEntry, error) {
	var e domain.MoodEntry
	var mood string
	err := r.db.sql.QueryRowContext(ctx,
		`SELECT id, user_id, mood, note, logged_at
		 FROM mood_entries WHERE id = $1 AND user_id = $2`, id, ownerID,
	).Scan(&e.ID, &e.UserID, &mood, &e.Note, &e.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Mood = domain.Mood(mood)
	return &e, nil
}
