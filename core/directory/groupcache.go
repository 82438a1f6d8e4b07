package directory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/slidecraft/sessionkit/core/logger"
)

const groupKeyPrefix = "directory:groups:"

// GroupCache is a Client decorator that shares resolved group sets across
// process replicas through Redis. It sits between the in-process
// MembershipCache and the real directory client:
//
//	directory -> GroupCache (shared, minutes) -> MembershipCache (local, seconds)
//
// Any Redis failure falls through to the inner client, so the shared tier
// can only reduce directory traffic, never change an answer or add a
// failure mode.
type GroupCache struct {
	inner  Client
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// GroupCacheOption configures a GroupCache.
type GroupCacheOption func(*GroupCache)

// WithGroupCacheTTL sets how long shared entries live in Redis.
func WithGroupCacheTTL(ttl time.Duration) GroupCacheOption {
	return func(gc *GroupCache) {
		if ttl > 0 {
			gc.ttl = ttl
		}
	}
}

// WithGroupCacheLogger sets the logger for cache-tier failures.
func WithGroupCacheLogger(log *slog.Logger) GroupCacheOption {
	return func(gc *GroupCache) {
		if log != nil {
			gc.logger = log
		}
	}
}

// NewGroupCache wraps the inner directory client with a Redis cache tier.
// The default TTL is 5 minutes.
func NewGroupCache(inner Client, rdb *redis.Client, opts ...GroupCacheOption) *GroupCache {
	gc := &GroupCache{
		inner:  inner,
		rdb:    rdb,
		ttl:    5 * time.Minute,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(gc)
	}

	return gc
}

// GroupsOf returns the shared cached group set, consulting the inner client
// on a miss and writing the result back with the configured TTL.
func (gc *GroupCache) GroupsOf(ctx context.Context, principalID string) ([]string, error) {
	key := groupKeyPrefix + principalID

	raw, err := gc.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var groups []string
		if jsonErr := json.Unmarshal(raw, &groups); jsonErr == nil {
			return groups, nil
		}
		// Unreadable entry: treat as a miss and let the write below repair it.
	} else if err != redis.Nil {
		gc.logger.WarnContext(ctx, "shared group cache read failed, querying directory",
			logger.PrincipalID(principalID),
			logger.Error(err))
	}

	groups, err := gc.inner.GroupsOf(ctx, principalID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(groups); err == nil {
		if err := gc.rdb.Set(ctx, key, raw, gc.ttl).Err(); err != nil {
			gc.logger.WarnContext(ctx, "shared group cache write failed",
				logger.PrincipalID(principalID),
				logger.Error(err))
		}
	}

	return groups, nil
}

// Invalidate removes the shared entry for a principal from Redis.
func (gc *GroupCache) Invalidate(ctx context.Context, principalID string) error {
	return gc.rdb.Del(ctx, groupKeyPrefix+principalID).Err()
}
