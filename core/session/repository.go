package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/slidecraft/sessionkit/core/permission"
)

// Repository is a thread-safe in-memory store of session records keyed by
// ID. It has no authorization logic: the service is responsible for asking
// the permission engine before touching a record.
//
// All operations complete in bounded time with the lock held; nothing under
// the lock performs I/O. Sessions cross the boundary as value copies, so no
// caller can observe or cause a partial mutation. Construct one per process
// (or per test) and pass it by reference; there is no ambient global store.
type Repository[Data any] struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session[Data]
}

// NewRepository creates an empty session repository.
func NewRepository[Data any]() *Repository[Data] {
	return &Repository[Data]{
		sessions: make(map[uuid.UUID]*Session[Data]),
	}
}

// Create inserts a new active session and returns a copy of it.
func (r *Repository[Data]) Create(ownerID string, visibility permission.Visibility) Session[Data] {
	now := time.Now()
	sess := &Session[Data]{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Visibility:     visibility,
		CreatedAt:      now,
		LastActivityAt: now,
	}

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()

	return sess.clone()
}

// Get returns a read-only snapshot. It deliberately does not update the
// activity timestamp: that happens via Touch only after the caller's
// permission is confirmed, so denied callers leave no activity trace.
func (r *Repository[Data]) Get(id uuid.UUID) (Session[Data], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return Session[Data]{}, false
	}
	return sess.clone(), true
}

// Touch records a successful access: it increments the access counter and,
// unless minInterval throttles it, refreshes the activity timestamp. The
// updated snapshot is returned. A missing session means the caller lost a
// race with the reaper; that is reported as !ok, not an error.
func (r *Repository[Data]) Touch(id uuid.UUID, minInterval time.Duration) (Session[Data], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return Session[Data]{}, false
	}

	sess.AccessCount++
	if minInterval <= 0 || time.Since(sess.LastActivityAt) >= minInterval {
		sess.LastActivityAt = time.Now()
	}
	return sess.clone(), true
}

// Mutate applies fn to the stored record under exclusive access and returns
// the updated snapshot. fn operates on a copy that is committed only when it
// returns nil, so a failed mutation leaves the record untouched. A panic in
// fn propagates: that is a broken invariant, not a user-input problem.
//
// Every committed mutation counts as a successful access: the activity
// timestamp and access counter are updated along with fn's changes.
func (r *Repository[Data]) Mutate(id uuid.UUID, fn func(*Session[Data]) error) (Session[Data], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return Session[Data]{}, ErrNotFound
	}

	updated := sess.clone()
	if err := fn(&updated); err != nil {
		return Session[Data]{}, err
	}

	// ID and ownership are immutable regardless of what fn did.
	updated.ID = sess.ID
	updated.OwnerID = sess.OwnerID
	updated.CreatedAt = sess.CreatedAt
	updated.AccessCount = sess.AccessCount + 1
	updated.LastActivityAt = time.Now()

	*sess = updated
	return sess.clone(), nil
}

// Delete removes the record. Idempotent; the boolean reports whether a
// record was present.
func (r *Repository[Data]) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// List returns snapshots of every stored session, in no particular order.
func (r *Repository[Data]) List() []Session[Data] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Session[Data], 0, len(r.sessions))
	for _, sess := range r.sessions {
		out = append(out, sess.clone())
	}
	return out
}

// ListByOwner returns snapshots of the owner's active sessions.
func (r *Repository[Data]) ListByOwner(ownerID string) []Session[Data] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Session[Data]
	for _, sess := range r.sessions {
		if sess.OwnerID == ownerID {
			out = append(out, sess.clone())
		}
	}
	return out
}

// SweepExpired atomically removes and returns every session idle longer than
// ttl. Used by the reaper; a record is either fully present or fully gone,
// never observed half-deleted.
func (r *Repository[Data]) SweepExpired(ttl time.Duration) []Session[Data] {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var reclaimed []Session[Data]
	for id, sess := range r.sessions {
		if now.Sub(sess.LastActivityAt) > ttl {
			reclaimed = append(reclaimed, sess.clone())
			delete(r.sessions, id)
		}
	}
	return reclaimed
}

// Len returns the number of stored sessions.
func (r *Repository[Data]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
