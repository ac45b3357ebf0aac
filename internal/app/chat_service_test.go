package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"companion/internal/app"
	"companion/internal/domain"
	"companion/internal/responder"
)

type fakeChats struct {
	sessions map[uuid.UUID]*domain.ChatSession
	messages []domain.Message
}

var _ domain.ChatRepository = (*fakeChats)(nil)

func newFakeChats() *fakeChats {
	return &fakeChats{sessions: map[uuid.UUID]*domain.ChatSession{}}
}

func (f *fakeChats) CreateSession(_ context.Context, s *domain.ChatSession) error {
	cpy := *s
	cpy.Messages = nil
	f.sessions[s.ID] = &cpy
	return nil
}

func (f *fakeChats) ListSessions(_ context.Context, ownerID uuid.UUID) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range f.sessions {
		if s.UserID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeChats) GetSession(_ context.Context, ownerID, id uuid.UUID) (*domain.ChatSession, error) {
	s, ok := f.sessions[id]
	if !ok || s.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	cpy := *s
	return &cpy, nil
}

func (f *fakeChats) RenameSession(_ context.Context, id uuid.UUID, name string, at time.Time) error {
	s, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Name = name
	s.UpdatedAt = at
	return nil
}

func (f *fakeChats) TouchSession(_ context.Context, id uuid.UUID, at time.Time) error {
	s, ok := f.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.UpdatedAt = at
	return nil
}

func (f *fakeChats) AddMessage(_ context.Context, m *domain.Message) error {
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeChats) ListMessages(_ context.Context, chatID uuid.UUID) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeChats) SetSentiment(_ context.Context, messageID uuid.UUID, s domain.Sentiment) error {
	for i := range f.messages {
		if f.messages[i].ID == messageID {
			sent := s
			f.messages[i].Sentiment = &sent
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeResponder struct {
	reply responder.Reply
	err   error
	calls int
}

func (f *fakeResponder) Respond(ctx context.Context, content string) (responder.Reply, error) {
	f.calls++
	if f.err != nil {
		return responder.Reply{}, f.err
	}
	if err := ctx.Err(); err != nil {
		return responder.Reply{}, err
	}
	return f.reply, nil
}

func neutralReply(text string) responder.Reply {
	return responder.Reply{
		Text:      text,
		Sentiment: domain.Sentiment{Score: 0, Label: domain.SentimentNeutral},
	}
}

func TestCreateSession(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("ok")}, time.Second)
	owner := domain.NewID()

	sess, err := svc.CreateSession(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, domain.PlaceholderSessionName, sess.Name)
	require.Equal(t, owner, sess.UserID)
	require.Empty(t, sess.Messages)
	require.Equal(t, sess.CreatedAt, sess.UpdatedAt)
}

func TestSendMessageStoresPairAndNamesSession(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("I hear you.")}, time.Second)
	ctx := context.Background()
	owner := domain.NewID()

	sess, err := svc.CreateSession(ctx, owner)
	require.NoError(t, err)

	bot, err := svc.SendMessage(ctx, owner, sess.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, domain.SenderBot, bot.Sender)
	require.Equal(t, "I hear you.", bot.Content)

	got, err := svc.GetSession(ctx, owner, sess.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Name, "five-character content names the session without ellipsis")
	require.Len(t, got.Messages, 2)
	require.Equal(t, domain.SenderUser, got.Messages[0].Sender)
	require.Equal(t, domain.SenderBot, got.Messages[1].Sender)
	require.NotNil(t, got.Messages[0].Sentiment, "user message carries the sentiment judgment")
	require.Equal(t, domain.SentimentNeutral, got.Messages[0].Sentiment.Label)
	require.Nil(t, got.Messages[1].Sentiment)
	require.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestSendMessageNamesSessionOnlyOnce(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("ok")}, time.Second)
	ctx := context.Background()
	owner := domain.NewID()

	sess, err := svc.CreateSession(ctx, owner)
	require.NoError(t, err)

	long := strings.Repeat("x", 40)
	_, err = svc.SendMessage(ctx, owner, sess.ID, long)
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, owner, sess.ID, "second message")
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, owner, sess.ID)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("x", 30)+"...", got.Name)
}

func TestSendMessageTimestampsNonDecreasing(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("ok")}, time.Second)
	ctx := context.Background()
	owner := domain.NewID()

	sess, err := svc.CreateSession(ctx, owner)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := svc.SendMessage(ctx, owner, sess.ID, "again")
		require.NoError(t, err)
	}

	got, err := svc.GetSession(ctx, owner, sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 6)
	for i := 1; i < len(got.Messages); i++ {
		require.False(t, got.Messages[i].Timestamp.Before(got.Messages[i-1].Timestamp))
	}
	// Strict user/bot alternation when every generator call succeeds.
	for i, m := range got.Messages {
		want := domain.SenderUser
		if i%2 == 1 {
			want = domain.SenderBot
		}
		require.Equal(t, want, m.Sender)
	}
}

func TestSendMessageOwnershipChecked(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("ok")}, time.Second)
	ctx := context.Background()

	owner := domain.NewID()
	sess, err := svc.CreateSession(ctx, owner)
	require.NoError(t, err)

	stranger := domain.NewID()
	_, err = svc.SendMessage(ctx, stranger, sess.ID, "hi")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetSession(ctx, stranger, sess.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSendMessageGeneratorFailure(t *testing.T) {
	repo := newFakeChats()
	gen := &fakeResponder{err: errors.New("model offline")}
	svc := app.NewChatService(repo, gen, time.Second)
	ctx := context.Background()
	owner := domain.NewID()

	sess, err := svc.CreateSession(ctx, owner)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, owner, sess.ID, "hello")
	require.ErrorIs(t, err, domain.ErrUpstream)

	// The user message stays durably stored without sentiment or reply.
	got, err := svc.GetSession(ctx, owner, sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	require.Equal(t, domain.SenderUser, got.Messages[0].Sender)
	require.Nil(t, got.Messages[0].Sentiment)
	// The first message still names the session even when the reply fails.
	require.Equal(t, "hello", got.Name)
}

func TestSendMessageEmptyContent(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("ok")}, time.Second)
	owner := domain.NewID()

	sess, err := svc.CreateSession(context.Background(), owner)
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), owner, sess.ID, "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := svc.GetSession(context.Background(), owner, sess.ID)
	require.NoError(t, err)
	require.Empty(t, got.Messages, "validation failure must not store anything")
}

func TestListSessionsAttachesMessages(t *testing.T) {
	repo := newFakeChats()
	svc := app.NewChatService(repo, &fakeResponder{reply: neutralReply("ok")}, time.Second)
	ctx := context.Background()
	owner := domain.NewID()

	a, err := svc.CreateSession(ctx, owner)
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, owner)
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, owner, a.ID, "hello")
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, owner)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		if s.ID == a.ID {
			require.Len(t, s.Messages, 2)
		} else {
			require.Empty(t, s.Messages)
		}
	}

	other, err := svc.ListSessions(ctx, domain.NewID())
	require.NoError(t, err)
	require.Empty(t, other)
}
