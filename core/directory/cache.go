package directory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/slidecraft/sessionkit/core/logger"
)

// entry is a cached group set with an expiry time for eviction.
type entry struct {
	groups  []string
	expires time.Time
}

// MembershipCache wraps a directory Client with a short-TTL in-process cache
// and converts every lookup failure into the empty group set.
//
// Failing to empty is deliberate: a permission check that defaults to deny on
// missing information is safe, while assuming membership would be a
// privilege-escalation bug. Failed and not-found lookups are cached like
// successes so a struggling directory is not hammered once per check.
type MembershipCache struct {
	client Client
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]entry

	// Observability metrics
	lookups  atomic.Int64
	hits     atomic.Int64
	failures atomic.Int64
}

// CacheStats provides observability metrics for monitoring and debugging.
type CacheStats struct {
	Lookups          int64 // Total directory lookups performed
	Hits             int64 // Lookups answered from cache
	Failures         int64 // Directory lookups that failed (answered with the empty set)
	CachedPrincipals int   // Current number of cached principals
}

// CacheOption configures a MembershipCache.
type CacheOption func(*MembershipCache)

// WithTTL sets how long a resolved group set stays valid. Short TTLs bound
// the window during which revoked group membership still grants access.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *MembershipCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLogger sets the logger for lookup failures.
func WithLogger(log *slog.Logger) CacheOption {
	return func(c *MembershipCache) {
		if log != nil {
			c.logger = log
		}
	}
}

// NewMembershipCache creates a cache over the given directory client.
// The default TTL is 30 seconds.
func NewMembershipCache(client Client, opts ...CacheOption) *MembershipCache {
	c := &MembershipCache{
		client:  client,
		ttl:     30 * time.Second,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		entries: make(map[string]entry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GroupsOf returns the principal's group set, from cache when fresh. It never
// fails; on directory error or unknown principal it returns the empty set.
//
// The directory call happens outside the lock so a cache miss blocks only the
// caller that missed, never concurrent checks for other principals. Two
// concurrent misses for the same principal may both hit the directory; the
// lookups are idempotent and last-write-wins on the cache entry.
func (c *MembershipCache) GroupsOf(ctx context.Context, principalID string) []string {
	if principalID == "" {
		return nil
	}

	now := time.Now()

	c.mu.RLock()
	e, ok := c.entries[principalID]
	c.mu.RUnlock()

	if ok && now.Before(e.expires) {
		c.hits.Add(1)
		return cloneGroups(e.groups)
	}

	c.lookups.Add(1)
	groups, err := c.client.GroupsOf(ctx, principalID)
	if err != nil {
		c.failures.Add(1)
		c.logger.WarnContext(ctx, "directory lookup failed, treating principal as groupless",
			logger.PrincipalID(principalID),
			logger.Error(err))
		groups = nil
	}

	// Cached slices are immutable once stored; copy on the way in and out.
	stored := cloneGroups(groups)

	c.mu.Lock()
	c.entries[principalID] = entry{groups: stored, expires: now.Add(c.ttl)}
	c.mu.Unlock()

	return cloneGroups(stored)
}

// Invalidate drops the cached entry for a principal, forcing the next check
// to consult the directory. Useful right after a known membership change.
func (c *MembershipCache) Invalidate(principalID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, principalID)
}

// Stats returns current cache statistics. Thread-safe.
func (c *MembershipCache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	return CacheStats{
		Lookups:          c.lookups.Load(),
		Hits:             c.hits.Load(),
		Failures:         c.failures.Load(),
		CachedPrincipals: size,
	}
}

func cloneGroups(groups []string) []string {
	if len(groups) == 0 {
		return nil
	}
	out := make([]string, len(groups))
	copy(out, groups)
	return out
}
