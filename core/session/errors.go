package session

import "errors"

var (
	// ErrNotFound is returned when a session does not exist: it never did,
	// it was deleted, or the reaper already reclaimed it. The message does
	// not distinguish those cases.
	ErrNotFound = errors.New("session not found")
	// ErrLimitExceeded is returned when an owner is at their concurrent
	// session cap. Wrapped errors carry the configured maximum.
	ErrLimitExceeded = errors.New("session limit exceeded")
	// ErrInvalidVisibility is returned for visibility values outside the
	// defined set.
	ErrInvalidVisibility = errors.New("invalid session visibility")
	// ErrNoRepository is returned when a service is constructed without a
	// repository.
	ErrNoRepository = errors.New("session repository is required")
	// ErrNoEngine is returned when a service is constructed without a
	// permission engine.
	ErrNoEngine = errors.New("permission engine is required")
)
