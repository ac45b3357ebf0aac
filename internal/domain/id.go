package domain

import "github.com/gofrs/uuid/v5"

// NewID generates a fresh entity identifier.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// ParseID validates an opaque identifier received from a client. A malformed
// id resolves to ErrNotFound rather than a validation error, matching the
// ownership-checked lookup behavior: callers cannot tell a bad id from a
// missing entity.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}
