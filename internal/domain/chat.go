package domain

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Sender identifies which side of a conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Valid reports whether s is one of the known senders.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// Sentiment labels for message sentiment judgments.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentiment is a numeric/label judgment of a message's emotional valence.
type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Message is a single chat message. Sentiment is set only on user messages,
// and only after the response generator has judged them.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	Content   string
	Sender    Sender
	Timestamp time.Time
	Sentiment *Sentiment
}

// ChatSession groups the messages of one conversation. Messages is transient:
// repositories return sessions without it and services attach the ordered
// message list where callers need it.
type ChatSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Messages  []Message
}

// ChatRepository defines the port for chat persistence. Lookups taking an
// ownerID merge the ownership check into the predicate: a session owned by a
// different user is ErrNotFound.
type ChatRepository interface {
	CreateSession(ctx context.Context, s *ChatSession) error
	ListSessions(ctx context.Context, ownerID uuid.UUID) ([]ChatSession, error)
	GetSession(ctx context.Context, ownerID, id uuid.UUID) (*ChatSession, error)
	// RenameSession sets the session name and bumps updated_at.
	RenameSession(ctx context.Context, id uuid.UUID, name string, at time.Time) error
	// TouchSession bumps updated_at.
	TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error

	AddMessage(ctx context.Context, m *Message) error
	// ListMessages returns a session's messages ordered by timestamp ascending.
	ListMessages(ctx context.Context, chatID uuid.UUID) ([]Message, error)
	// SetSentiment attaches a sentiment judgment to a stored message.
	SetSentiment(ctx context.Context, messageID uuid.UUID, s Sentiment) error
}
