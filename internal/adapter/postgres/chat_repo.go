package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"companion/internal/domain"
)

// CreateSession inserts a new chat session.
func (d *DB) CreateSession(ctx context.Context, s *domain.ChatSession) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.Name, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

// ListSessions returns all sessions owned by ownerID.
func (d *DB) ListSessions(ctx context.Context, ownerID uuid.UUID) ([]domain.ChatSession, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM chat_sessions WHERE user_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.ChatSession{}
	for rows.Next() {
		var s domain.ChatSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSession returns a session only if it exists and is owned by ownerID.
// Ownership is part of the lookup predicate.
func (d *DB) GetSession(ctx context.Context, ownerID, id uuid.UUID) (*domain.ChatSession, error) {
	var s domain.ChatSession
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM chat_sessions WHERE id = $1 AND user_id = $2`, id, ownerID,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RenameSession sets the session name and bumps updated_at.
func (d *DB) RenameSession(ctx context.Context, id uuid.UUID, name string, at time.Time) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE chat_sessions SET name = $2, updated_at = $3 WHERE id = $1`, id, name, at)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// TouchSession bumps updated_at.
func (d *DB) TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE chat_sessions SET updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddMessage inserts a message.
func (d *DB) AddMessage(ctx context.Context, m *domain.Message) error {
	var score sql.NullFloat64
	var label sql.NullString
	if m.Sentiment != nil {
		score = sql.NullFloat64{Float64: m.Sentiment.Score, Valid: true}
		label = sql.NullString{String: m.Sentiment.Label, Valid: true}
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO messages (id, chat_id, content, sender, sent_at, sentiment_score, sentiment_label)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ChatID, m.Content, string(m.Sender), m.Timestamp, score, label,
	)
	return err
}

// ListMessages returns a session's messages ordered by timestamp ascending.
func (d *DB) ListMessages(ctx context.Context, chatID uuid.UUID) ([]domain.Message, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, chat_id, content, sender, sent_at, sentiment_score, sentiment_label
		 FROM messages WHERE chat_id = $1 ORDER BY sent_at ASC`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		var sender string
		var score sql.NullFloat64
		var label sql.NullString
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Content, &sender, &m.Timestamp, &score, &label); err != nil {
			return nil, err
		}
		m.Sender = domain.Sender(sender)
		if score.Valid && label.Valid {
			m.Sentiment = &domain.Sentiment{Score: score.Float64, Label: label.String}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SetSentiment attaches a sentiment judgment to a stored message.
func (d *DB) SetSentiment(ctx context.Context, messageID uuid.UUID, s domain.Sentiment) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE messages SET sentiment_score = $2, sentiment_label = $3 WHERE id = $1`,
		messageID, s.Score, s.Label)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
