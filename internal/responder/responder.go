// Package responder defines the contract for the external response
// generator and provides the default static implementation.
package responder

import (
	"context"
	"math/rand"
	"sync"

	"companion/internal/domain"
)

// Reply is the generator's answer to a user message: a reply to show and a
// sentiment judgment of the message it answers.
type Reply struct {
	Text      string
	Sentiment domain.Sentiment
}

// Responder produces a bot reply and a sentiment judgment for a user
// message. Implementations must honor the context deadline; the chat service
// calls Respond synchronously under a bounded timeout.
type Responder interface {
	Respond(ctx context.Context, content string) (Reply, error)
}

// Supportive, non-directive replies used by the static responder.
var staticReplies = []string{
	"I understand how you're feeling. Would you like to talk more about that?",
	"Thank you for sharing that with me. How long have you been feeling this way?",
	"That sounds challenging. What helps you cope when you feel like this?",
	"I'm here to listen. Would you like to explore some techniques that might help?",
	"Your feelings are valid. It takes courage to express them.",
	"I hear you. Sometimes just talking about our feelings can help us process them better.",
	"Would you like to try a quick mindfulness exercise to help center yourself?",
	"It sounds like you're going through a lot. Remember to be kind to yourself during this time.",
	"Have you spoken to anyone else about how you're feeling?",
	"I'm glad you reached out today. Is there anything specific you'd like support with?",
}

// Static is the default generator: a neutral sentiment and a pseudo-randomly
// selected supportive phrase. It stands in for a real model behind the same
// contract.
type Static struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStatic creates a Static responder seeded with the given value.
func NewStatic(seed int64) *Static {
	return &Static{rng: rand.New(rand.NewSource(seed))}
}

// Respond picks a reply from the fixed set and judges the message neutral.
func (s *Static) Respond(ctx context.Context, content string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	s.mu.Lock()
	text := staticReplies[s.rng.Intn(len(staticReplies))]
	s.mu.Unlock()

	return Reply{
		Text:      text,
		Sentiment: domain.Sentiment{Score: 0, Label: domain.SentimentNeutral},
	}, nil
}
