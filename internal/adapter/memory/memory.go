// Package memory implements the domain repositories in memory for
// development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"companion/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	sessions []*domain.ChatSession
	messages []domain.Message
	moods    []domain.MoodEntry
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ChatRepository = (*DB)(nil)
var _ domain.MoodRepository = (*MoodRepo)(nil)

// --- UserRepository ---

// Create stores a new user, enforcing email uniqueness.
func (db *DB) Create(ctx context.Context, u *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	cpy := *u
	db.users = append(db.users, &cpy)
	return nil
}

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, domain.ErrNotFound
}

// TouchLastLogin records a successful login.
func (db *DB) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			t := at
			u.LastLogin = &t
			u.UpdatedAt = at
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- ChatRepository ---

// CreateSession stores a new chat session.
func (db *DB) CreateSession(ctx context.Context, s *domain.ChatSession) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cpy := *s
	cpy.Messages = nil
	db.sessions = append(db.sessions, &cpy)
	return nil
}

// ListSessions returns all sessions owned by ownerID.
func (db *DB) ListSessions(ctx context.Context, ownerID uuid.UUID) ([]domain.ChatSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.ChatSession{}
	for _, s := range db.sessions {
		if s.UserID == ownerID {
			out = append(out, *s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// GetSession returns a session only if it exists and is owned by ownerID.
func (db *DB) GetSession(ctx context.Context, ownerID, id uuid.UUID) (*domain.ChatSession, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, s := range db.sessions {
		if s.ID == id && s.UserID == ownerID {
			cpy := *s
			return &cpy, nil
		}
	}
	return nil, domain.ErrNotFound
}

// RenameSession sets the session name and bumps updated_at.
func (db *DB) RenameSession(ctx context.Context, id uuid.UUID, name string, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, s := range db.sessions {
		if s.ID == id {
			s.Name = name
			s.UpdatedAt = at
			return nil
		}
	}
	return domain.ErrNotFound
}

// TouchSession bumps updated_at.
func (db *DB) TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, s := range db.sessions {
		if s.ID == id {
			s.UpdatedAt = at
			return nil
		}
	}
	return domain.ErrNotFound
}

// AddMessage appends a message.
func (db *DB) AddMessage(ctx context.Context, m *domain.Message) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.messages = append(db.messages, *m)
	return nil
}

// ListMessages returns a session's messages ordered by timestamp ascending.
func (db *DB) ListMessages(ctx context.Context, chatID uuid.UUID) ([]domain.Message, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.Message{}
	for _, m := range db.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// SetSentiment attaches a sentiment judgment to a stored message.
func (db *DB) SetSentiment(ctx context.Context, messageID uuid.UUID, s domain.Sentiment) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.messages {
		if db.messages[i].ID == messageID {
			sent := s
			db.messages[i].Sentiment = &sent
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- MoodRepository ---

// MoodRepo exposes the database as a domain.MoodRepository. Moods live on a
// wrapper because DB.Create is taken by the user repository.
type MoodRepo struct {
	db *DB
}

// Moods returns the mood repository view of the database.
func (db *DB) Moods() *MoodRepo {
	return &MoodRepo{db: db}
}

// Create stores a new mood entry.
func (r *MoodRepo) Create(ctx context.Context, e *domain.MoodEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.moods = append(r.db.moods, *e)
	return nil
}

// List returns the owner's entries newest first within the inclusive bounds.
func (r *MoodRepo) List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]domain.MoodEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := []domain.MoodEntry{}
	for _, e := range r.db.moods {
		if e.UserID != ownerID {
			continue
		}
		if from != nil && e.Timestamp.Before(*from) {
			continue
		}
		if to != nil && e.Timestamp.After(*to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Get returns one entry only if owned by ownerID.
func (r *MoodRepo) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.MoodEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, e := range r.db.moods {
		if e.ID == id && e.UserID == ownerID {
			cpy := e
			return &cpy, nil
		}
	}
	return nil, domain.ErrNotFound
}
