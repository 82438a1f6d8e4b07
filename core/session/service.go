package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slidecraft/sessionkit/core/logger"
	"github.com/slidecraft/sessionkit/core/permission"
)

// Service is the entry point the API layer calls. It composes the
// repository, the permission engine, and the limiter into atomic
// user-visible operations: resolve the session, ask the engine, apply the
// operation, record the activity.
type Service[Data any] struct {
	repo    *Repository[Data]
	engine  *permission.Engine
	limiter *Limiter[Data]
	cfg     Config
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption[Data any] func(*Service[Data])

// WithRepository sets the session repository. Required.
func WithRepository[Data any](repo *Repository[Data]) ServiceOption[Data] {
	return func(s *Service[Data]) {
		s.repo = repo
	}
}

// WithEngine sets the permission engine. Required.
func WithEngine[Data any](engine *permission.Engine) ServiceOption[Data] {
	return func(s *Service[Data]) {
		s.engine = engine
	}
}

// WithConfig applies lifecycle configuration options.
func WithConfig[Data any](opts ...Option) ServiceOption[Data] {
	return func(s *Service[Data]) {
		for _, opt := range opts {
			opt(&s.cfg)
		}
	}
}

// WithLogger sets the service logger.
func WithLogger[Data any](log *slog.Logger) ServiceOption[Data] {
	return func(s *Service[Data]) {
		if log != nil {
			s.logger = log
		}
	}
}

// NewService creates a session service. A repository and a permission engine
// are required; configuration defaults to DefaultConfig.
func NewService[Data any](opts ...ServiceOption[Data]) (*Service[Data], error) {
	svc := &Service[Data]{
		cfg:    DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.repo == nil {
		return nil, ErrNoRepository
	}
	if svc.engine == nil {
		return nil, ErrNoEngine
	}

	svc.limiter = NewLimiter(svc.repo, svc.cfg.MaxPerOwner, svc.cfg.TTL, svc.logger)
	return svc, nil
}

// NewServiceFromConfig creates a service from an env-loaded Config. Options
// may still override individual values.
func NewServiceFromConfig[Data any](cfg Config, opts ...ServiceOption[Data]) (*Service[Data], error) {
	base := func(s *Service[Data]) {
		s.cfg = cfg
	}
	return NewService(append([]ServiceOption[Data]{base}, opts...)...)
}

// Config returns the lifecycle configuration the service runs with. The
// reaper is constructed separately and should share it.
func (s *Service[Data]) Config() Config {
	return s.cfg
}

// Create opens a new session for the owner. The per-owner cap is checked
// first (with an opportunistic reap of the owner's expired sessions); on
// pass the session is stored active with a fresh activity timestamp.
//
// An empty ownerID creates a system session: readable by everyone, editable
// by no one, exempt from the cap.
func (s *Service[Data]) Create(ctx context.Context, ownerID string, visibility permission.Visibility) (Session[Data], error) {
	if !visibility.Valid() {
		return Session[Data]{}, ErrInvalidVisibility
	}
	if err := s.limiter.CheckAndReserve(ownerID); err != nil {
		return Session[Data]{}, err
	}

	sess := s.repo.Create(ownerID, visibility)
	s.logger.DebugContext(ctx, "session created",
		logger.SessionID(sess.ID),
		logger.OwnerID(ownerID),
		logger.Visibility(string(visibility)))
	return sess, nil
}

// Get returns the session if the principal holds read access, recording the
// access on success. Denied principals leave no activity trace.
func (s *Service[Data]) Get(ctx context.Context, principalID string, id uuid.UUID) (Session[Data], error) {
	sess, ok := s.repo.Get(id)
	if !ok {
		return Session[Data]{}, ErrNotFound
	}
	if err := s.engine.Require(ctx, principalID, sess.Resource(), permission.LevelRead); err != nil {
		return Session[Data]{}, err
	}

	if touched, ok := s.repo.Touch(id, s.cfg.TouchInterval); ok {
		return touched, nil
	}
	// Reaped between check and touch; the read still linearizes before the
	// reap, so serve the snapshot.
	return sess, nil
}

// Rename sets the session title. Requires edit access.
func (s *Service[Data]) Rename(ctx context.Context, principalID string, id uuid.UUID, name string) error {
	return s.mutate(ctx, principalID, id, func(sess *Session[Data]) error {
		sess.Name = name
		return nil
	})
}

// UpdateData replaces the session payload with a newly generated artifact.
// Requires edit access.
func (s *Service[Data]) UpdateData(ctx context.Context, principalID string, id uuid.UUID, data Data) error {
	return s.mutate(ctx, principalID, id, func(sess *Session[Data]) error {
		sess.Data = data
		return nil
	})
}

// Delete removes the session immediately, bypassing the reaper. Requires
// edit access. The release hook is the caller's concern on manual deletes.
func (s *Service[Data]) Delete(ctx context.Context, principalID string, id uuid.UUID) error {
	sess, ok := s.repo.Get(id)
	if !ok {
		return ErrNotFound
	}
	if err := s.engine.Require(ctx, principalID, sess.Resource(), permission.LevelEdit); err != nil {
		return err
	}

	s.repo.Delete(id)
	s.logger.DebugContext(ctx, "session deleted",
		logger.SessionID(id),
		logger.PrincipalID(principalID))
	return nil
}

// Grant adds or overwrites an ACL entry. Owner only: holding edit is not
// enough to change who else has access. Granting the same principal again
// replaces the previous level (last-write-wins, no stacking).
func (s *Service[Data]) Grant(ctx context.Context, principalID string, id uuid.UUID, g permission.Grant) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return s.adminMutate(principalID, id, func(sess *Session[Data]) error {
		sess.ACL = sess.ACL.Upsert(g)
		return nil
	})
}

// Revoke removes an ACL entry. Owner only. The boolean reports whether a
// grant was present; revoking a missing grant is a normal outcome, not an
// error.
func (s *Service[Data]) Revoke(ctx context.Context, principalID string, id uuid.UUID, t permission.PrincipalType, targetID string) (bool, error) {
	revoked := false
	err := s.adminMutate(principalID, id, func(sess *Session[Data]) error {
		sess.ACL, revoked = sess.ACL.Remove(t, targetID)
		return nil
	})
	if err != nil {
		return false, err
	}
	return revoked, nil
}

// SetVisibility changes the session-wide default access. Owner only.
func (s *Service[Data]) SetVisibility(ctx context.Context, principalID string, id uuid.UUID, visibility permission.Visibility) error {
	if !visibility.Valid() {
		return ErrInvalidVisibility
	}
	return s.adminMutate(principalID, id, func(sess *Session[Data]) error {
		sess.Visibility = visibility
		return nil
	})
}

// ListAccessible returns every session the principal can read: owned
// sessions, workspace-visible sessions, and sessions with an applicable
// grant. Listing does not count as an access, so it never touches activity
// timestamps. Computed by a full scan, which is fine at single-process
// scale; a reverse index is deliberately out of scope.
func (s *Service[Data]) ListAccessible(ctx context.Context, principalID string) []Session[Data] {
	var out []Session[Data]
	for _, sess := range s.repo.List() {
		if s.engine.Check(ctx, principalID, sess.Resource(), permission.LevelRead) {
			out = append(out, sess)
		}
	}
	return out
}

// mutate runs an edit-gated content mutation: resolve, check edit, apply
// under the repository's exclusive access.
func (s *Service[Data]) mutate(ctx context.Context, principalID string, id uuid.UUID, fn func(*Session[Data]) error) error {
	sess, ok := s.repo.Get(id)
	if !ok {
		return ErrNotFound
	}
	if err := s.engine.Require(ctx, principalID, sess.Resource(), permission.LevelEdit); err != nil {
		return err
	}

	_, err := s.repo.Mutate(id, fn)
	return err
}

// adminMutate runs an owner-gated ACL/visibility mutation. Ownership is
// immutable, so the check cannot be raced stale by concurrent mutations.
func (s *Service[Data]) adminMutate(principalID string, id uuid.UUID, fn func(*Session[Data]) error) error {
	sess, ok := s.repo.Get(id)
	if !ok {
		return ErrNotFound
	}
	if err := s.engine.RequireOwner(principalID, sess.Resource()); err != nil {
		return err
	}

	_, err := s.repo.Mutate(id, fn)
	return err
}
