package memory

import (
	"context"
	"testing"
	"time"

	"companion/internal/domain"
)

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u := &domain.User{
		ID:           domain.NewID(),
		Name:         "Jane",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := db.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Duplicate email rejected
	dup := &domain.User{ID: domain.NewID(), Email: "jane@example.com"}
	if err := db.Create(ctx, dup); err != domain.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	got, err := db.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("expected %v, got %v", u.ID, got.ID)
	}

	if _, err := db.GetByEmail(ctx, "nobody@example.com"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Last login
	at := time.Now().UTC()
	if err := db.TouchLastLogin(ctx, u.ID, at); err != nil {
		t.Fatalf("TouchLastLogin: %v", err)
	}
	got, _ = db.GetByID(ctx, u.ID)
	if got.LastLogin == nil || !got.LastLogin.Equal(at) {
		t.Error("expected LastLogin to be recorded")
	}
}

func TestChatRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	owner := domain.NewID()

	sess := &domain.ChatSession{
		ID:        domain.NewID(),
		UserID:    owner,
		Name:      domain.PlaceholderSessionName,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := db.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Ownership merged into lookup: stranger gets NotFound
	if _, err := db.GetSession(ctx, domain.NewID(), sess.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for stranger, got %v", err)
	}
	if _, err := db.GetSession(ctx, owner, domain.NewID()); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}

	// Messages come back ordered by timestamp ascending
	base := time.Now().UTC()
	second := domain.Message{ID: domain.NewID(), ChatID: sess.ID, Content: "b", Sender: domain.SenderBot, Timestamp: base.Add(time.Second)}
	first := domain.Message{ID: domain.NewID(), ChatID: sess.ID, Content: "a", Sender: domain.SenderUser, Timestamp: base}
	if err := db.AddMessage(ctx, &second); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}
	if err := db.AddMessage(ctx, &first); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}

	msgs, err := db.ListMessages(ctx, sess.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "a" || msgs[1].Content != "b" {
		t.Errorf("expected [a b] in timestamp order, got %v", msgs)
	}

	// Sentiment attaches to the stored message
	if err := db.SetSentiment(ctx, first.ID, domain.Sentiment{Score: -0.5, Label: domain.SentimentNegative}); err != nil {
		t.Fatalf("SetSentiment: %v", err)
	}
	msgs, _ = db.ListMessages(ctx, sess.ID)
	if msgs[0].Sentiment == nil || msgs[0].Sentiment.Label != domain.SentimentNegative {
		t.Error("expected sentiment on the first message")
	}

	// Rename and touch update the session
	at := time.Now().UTC().Add(time.Minute)
	if err := db.RenameSession(ctx, sess.ID, "hello", at); err != nil {
		t.Fatalf("RenameSession: %v", err)
	}
	got, _ := db.GetSession(ctx, owner, sess.ID)
	if got.Name != "hello" || !got.UpdatedAt.Equal(at) {
		t.Errorf("expected renamed session, got %q at %v", got.Name, got.UpdatedAt)
	}

	// List scoped to owner
	sessions, _ := db.ListSessions(ctx, owner)
	if len(sessions) != 1 {
		t.Errorf("expected 1 session, got %d", len(sessions))
	}
	sessions, _ = db.ListSessions(ctx, domain.NewID())
	if len(sessions) != 0 {
		t.Errorf("expected 0 sessions for other user, got %d", len(sessions))
	}
}

func TestMoodRepository(t *testing.T) {
	db := New()
	moods := db.Moods()
	ctx := context.Background()
	owner := domain.NewID()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, m := range []domain.Mood{domain.MoodSad, domain.MoodNeutral, domain.MoodHappy} {
		e := &domain.MoodEntry{
			ID:        domain.NewID(),
			UserID:    owner,
			Mood:      m,
			Timestamp: base.AddDate(0, 0, i),
		}
		if err := moods.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// Newest first, no bounds
	all, err := moods.List(ctx, owner, nil, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Mood != domain.MoodHappy || all[2].Mood != domain.MoodSad {
		t.Errorf("expected newest-first ordering, got %v", all)
	}

	// Inclusive bounds keep entries exactly on the boundary
	from := base
	to := base.AddDate(0, 0, 1)
	ranged, _ := moods.List(ctx, owner, &from, &to)
	if len(ranged) != 2 {
		t.Errorf("expected 2 entries in [from,to], got %d", len(ranged))
	}

	// Ownership-checked get
	target := all[0]
	got, err := moods.Get(ctx, owner, target.ID)
	if err != nil || got.ID != target.ID {
		t.Fatalf("Get: %v", err)
	}
	if _, err := moods.Get(ctx, domain.NewID(), target.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for stranger, got %v", err)
	}

	// Other user sees nothing
	other, _ := moods.List(ctx, domain.NewID(), nil, nil)
	if len(other) != 0 {
		t.Errorf("expected 0 entries for other user, got %d", len(other))
	}
}
