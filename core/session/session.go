package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/slidecraft/sessionkit/core/permission"
)

// Session represents one conversational session and the artifact it
// produced. The Data type parameter carries the externally-generated payload;
// this package never interprets it.
type Session[Data any] struct {
	// ID is the stable unique session identifier. Immutable for the
	// session's lifetime; never reused after expiry or deletion.
	ID uuid.UUID

	// OwnerID is the principal that created the session. Empty marks a
	// legacy/system session with no owner: readable by every authenticated
	// principal, editable by none.
	OwnerID string

	// Name is the user-facing session title.
	Name string

	// Visibility is the session-wide default access. Owner-mutable only.
	Visibility permission.Visibility

	// ACL holds the explicit grants. Owner-mutable only; at most one entry
	// per (type, principal) pair.
	ACL permission.ACL

	// Data is the opaque artifact payload produced by the generation
	// pipeline.
	Data Data

	CreatedAt      time.Time
	LastActivityAt time.Time

	// AccessCount counts successful operations on the session. For
	// observability only; plays no part in authorization or expiry.
	AccessCount int64
}

// HasOwner reports whether the session has an owner. Ownerless sessions can
// never be edited or deleted through the service; the reaper is their only
// exit.
func (s Session[Data]) HasOwner() bool {
	return s.OwnerID != ""
}

// IsExpired reports whether the session has been idle longer than ttl.
func (s Session[Data]) IsExpired(ttl time.Duration) bool {
	return time.Since(s.LastActivityAt) > ttl
}

// Resource returns the authorization-relevant slice of the session for the
// permission engine.
func (s Session[Data]) Resource() permission.Resource {
	return permission.Resource{
		OwnerID:    s.OwnerID,
		Visibility: s.Visibility,
		ACL:        s.ACL,
	}
}

// clone returns an independent copy suitable for handing across the
// repository boundary. Data is copied by value; payload types holding
// pointers share referents, which is safe as long as callers treat the
// payload as immutable (the generation pipeline replaces it wholesale via
// UpdateData).
func (s Session[Data]) clone() Session[Data] {
	c := s
	c.ACL = s.ACL.Clone()
	return c
}
