package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"companion/internal/domain"
	"companion/internal/responder"
)

// ChatService encapsulates chat-session and message use cases. Sending a
// message invokes the response generator synchronously, so every successful
// user message is immediately followed by one bot message.
type ChatService struct {
	chats        domain.ChatRepository
	gen          responder.Responder
	replyTimeout time.Duration
}

// NewChatService creates a ChatService. replyTimeout bounds every response
// generator call.
func NewChatService(chats domain.ChatRepository, gen responder.Responder, replyTimeout time.Duration) *ChatService {
	return &ChatService{chats: chats, gen: gen, replyTimeout: replyTimeout}
}

// CreateSession creates an empty session with the placeholder name.
func (s *ChatService) CreateSession(ctx context.Context, ownerID uuid.UUID) (*domain.ChatSession, error) {
	now := time.Now().UTC()
	sess := &domain.ChatSession{
		ID:        domain.NewID(),
		UserID:    ownerID,
		Name:      domain.PlaceholderSessionName,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []domain.Message{},
	}
	if err := s.chats.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ListSessions returns the owner's sessions, each with its messages ordered
// by timestamp ascending.
func (s *ChatService) ListSessions(ctx context.Context, ownerID uuid.UUID) ([]domain.ChatSession, error) {
	sessions, err := s.chats.ListSessions(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		msgs, err := s.chats.ListMessages(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Messages = msgs
	}
	return sessions, nil
}

// GetSession returns one session with messages. A session owned by a
// different user is ErrNotFound, same as a missing one.
func (s *ChatService) GetSession(ctx context.Context, ownerID, id uuid.UUID) (*domain.ChatSession, error) {
	sess, err := s.chats.GetSession(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	msgs, err := s.chats.ListMessages(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	sess.Messages = msgs
	return sess, nil
}

// SendMessage stores a user message, invokes the response generator, and
// returns the stored bot reply. The steps are not atomic: if the generator
// fails, the user message stays persisted without sentiment or reply and the
// caller gets ErrUpstream; recovery is the client resending.
func (s *ChatService) SendMessage(ctx context.Context, ownerID, sessionID uuid.UUID, content string) (*domain.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	sess, err := s.chats.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	userMsg := &domain.Message{
		ID:        domain.NewID(),
		ChatID:    sess.ID,
		Content:   content,
		Sender:    domain.SenderUser,
		Timestamp: time.Now().UTC(),
	}
	if err := s.chats.AddMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	// First message names the session.
	if sess.Name == domain.PlaceholderSessionName {
		name := domain.SessionNameFromMessage(content)
		if err := s.chats.RenameSession(ctx, sess.ID, name, time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	reply, err := s.respond(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	if err := s.chats.SetSentiment(ctx, userMsg.ID, reply.Sentiment); err != nil {
		return nil, err
	}

	botMsg := &domain.Message{
		ID:        domain.NewID(),
		ChatID:    sess.ID,
		Content:   reply.Text,
		Sender:    domain.SenderBot,
		Timestamp: time.Now().UTC(),
	}
	if err := s.chats.AddMessage(ctx, botMsg); err != nil {
		return nil, err
	}

	if err := s.chats.TouchSession(ctx, sess.ID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return botMsg, nil
}

func (s *ChatService) respond(ctx context.Context, content string) (responder.Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.replyTimeout)
	defer cancel()
	return s.gen.Respond(ctx, content)
}
