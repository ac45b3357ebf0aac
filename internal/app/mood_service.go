package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"companion/internal/domain"
)

// MoodService encapsulates mood-tracking use cases.
type MoodService struct {
	moods domain.MoodRepository
}

// NewMoodService creates a MoodService backed by the given repository.
func NewMoodService(moods domain.MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

// Record validates and stores a mood entry timestamped now.
func (s *MoodService) Record(ctx context.Context, ownerID uuid.UUID, mood domain.Mood, note string) (*domain.MoodEntry, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("%w: unknown mood %q", domain.ErrInvalidInput, mood)
	}
	e := &domain.MoodEntry{
		ID:        domain.NewID(),
		UserID:    ownerID,
		Mood:      mood,
		Note:      note,
		Timestamp: time.Now().UTC(),
	}
	if err := s.moods.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns the owner's entries newest first, optionally bounded by an
// inclusive [from, to] range.
func (s *MoodService) List(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]domain.MoodEntry, error) {
	return s.moods.List(ctx, ownerID, from, to)
}

// Get returns one entry, ownership-checked.
func (s *MoodService) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.MoodEntry, error) {
	return s.moods.Get(ctx, ownerID, id)
}
