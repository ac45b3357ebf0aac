package adapthttp

import (
	"time"

	"companion/internal/domain"
)

// Response shapes. Identifiers serialize as opaque strings and password
// hashes are never exposed.

type userResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	IsAnonymous bool       `json:"is_anonymous"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		IsAnonymous: u.Anonymous,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLogin:   u.LastLogin,
	}
}

type messageResponse struct {
	ID        string            `json:"id"`
	ChatID    string            `json:"chat_id"`
	Content   string            `json:"content"`
	Sender    string            `json:"sender"`
	Timestamp time.Time         `json:"timestamp"`
	Sentiment *domain.Sentiment `json:"sentiment,omitempty"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		ChatID:    m.ChatID.String(),
		Content:   m.Content,
		Sender:    string(m.Sender),
		Timestamp: m.Timestamp,
		Sentiment: m.Sentiment,
	}
}

type chatResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Messages  []messageResponse `json:"messages"`
}

func toChatResponse(s *domain.ChatSession) chatResponse {
	msgs := make([]messageResponse, 0, len(s.Messages))
	for i := range s.Messages {
		msgs = append(msgs, toMessageResponse(&s.Messages[i]))
	}
	return chatResponse{
		ID:        s.ID.String(),
		UserID:    s.UserID.String(),
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Messages:  msgs,
	}
}

type moodResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func toMoodResponse(e *domain.MoodEntry) moodResponse {
	return moodResponse{
		ID:        e.ID.String(),
		UserID:    e.UserID.String(),
		Mood:      string(e.Mood),
		Note:      e.Note,
		Timestamp: e.Timestamp,
	}
}
