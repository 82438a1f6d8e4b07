package session

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/slidecraft/sessionkit/core/logger"
)

// Limiter bounds the number of concurrently active sessions a single owner
// may hold. When an owner is at the cap it reaps that owner's individually
// expired sessions before rejecting, so the limit heals itself without
// waiting for the next global reaper cycle.
type Limiter[Data any] struct {
	repo   *Repository[Data]
	max    int
	ttl    time.Duration
	logger *slog.Logger
}

// NewLimiter creates a limiter over the repository. max <= 0 disables the
// cap; ttl is the same idle timeout the reaper uses.
func NewLimiter[Data any](repo *Repository[Data], max int, ttl time.Duration, log *slog.Logger) *Limiter[Data] {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Limiter[Data]{
		repo:   repo,
		max:    max,
		ttl:    ttl,
		logger: log,
	}
}

// CheckAndReserve returns nil if the owner may create another session, or
// ErrLimitExceeded (carrying the configured maximum) if they are at the cap
// even after the opportunistic reap. Ownerless creates always pass: system
// sessions are not capped.
func (l *Limiter[Data]) CheckAndReserve(ownerID string) error {
	if l.max <= 0 || ownerID == "" {
		return nil
	}

	active := l.repo.ListByOwner(ownerID)
	if len(active) < l.max {
		return nil
	}

	reaped := 0
	for _, sess := range active {
		if sess.IsExpired(l.ttl) && l.repo.Delete(sess.ID) {
			reaped++
		}
	}
	if reaped > 0 {
		l.logger.Debug("reaped expired sessions at owner cap",
			logger.Component("session.limiter"),
			logger.OwnerID(ownerID),
			logger.Count("reaped", reaped))
	}

	remaining := len(l.repo.ListByOwner(ownerID))
	if remaining >= l.max {
		return fmt.Errorf("%w: %d active sessions (max %d)", ErrLimitExceeded, remaining, l.max)
	}
	return nil
}
