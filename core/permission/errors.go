package permission

import "errors"

var (
	// ErrDenied is returned when a principal lacks the required access level,
	// or is not the owner for owner-gated operations.
	ErrDenied = errors.New("permission denied")
	// ErrInvalidGrant is returned for grants with an unknown principal type,
	// empty principal ID, or unknown level.
	ErrInvalidGrant = errors.New("invalid permission grant")
	// ErrInvalidLevel is returned when parsing an unknown level string.
	ErrInvalidLevel = errors.New("invalid permission level")
)
