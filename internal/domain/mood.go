package domain

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Mood is a closed enumeration of trackable moods.
type Mood string

const (
	MoodJoyful    Mood = "joyful"
	MoodHappy     Mood = "happy"
	MoodContent   Mood = "content"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodAnxious   Mood = "anxious"
	MoodStressed  Mood = "stressed"
	MoodAngry     Mood = "angry"
	MoodExhausted Mood = "exhausted"
)

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodJoyful, MoodHappy, MoodContent, MoodNeutral, MoodSad,
		MoodAnxious, MoodStressed, MoodAngry, MoodExhausted:
		return true
	}
	return false
}

// MoodEntry is a single logged mood. Entries are append-only.
type MoodEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Mood      Mood
	Note      string
	Timestamp time.Time
}

// MoodRepository defines the port for mood persistence. Get merges the
// ownership check into the lookup predicate.
type MoodRepository interface {
	Create(ctx context.Context, e *MoodEntry) error
	// List returns the owner's entries newest first. Nil bounds are open;
	// set bounds are inclusive.
	List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]MoodEntry, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*MoodEntry, error)
}
