package domain

import "errors"

// Sentinel errors shared across layers. The HTTP adapter maps these to
// status codes; services and repositories wrap them with context.
var (
	// ErrNotFound covers both a missing entity and an entity owned by a
	// different user, so callers cannot probe for other users' data.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnauthorized indicates a missing, invalid, or expired credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput indicates malformed or out-of-range request input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream indicates the response generator failed or timed out.
	ErrUpstream = errors.New("response generator unavailable")
)
