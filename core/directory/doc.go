// Package directory resolves group memberships from an external directory
// service and caches them for permission evaluation.
//
// The package owns one hard rule: membership lookups fail closed. Whatever
// goes wrong between this process and the directory (network error, timeout,
// unknown principal), callers receive the empty group set rather than an
// error. A permission engine that defaults to deny on missing information is
// safe; one that guesses memberships is a privilege-escalation bug waiting
// to happen.
//
// # Layers
//
//   - Client: the external lookup contract your deployment implements.
//   - MembershipCache: in-process, seconds-scale TTL cache. Implements the
//     permission.GroupResolver contract (infallible by construction).
//   - GroupCache: optional Redis-backed tier shared across replicas, for
//     deployments where the directory call is expensive or rate-limited.
//
// # Basic Usage
//
//	import "github.com/slidecraft/sessionkit/core/directory"
//
//	client := directory.ClientFunc(func(ctx context.Context, principalID string) ([]string, error) {
//		return idp.ListGroups(ctx, principalID) // your directory integration
//	})
//
//	cache := directory.NewMembershipCache(client,
//		directory.WithTTL(30*time.Second),
//		directory.WithLogger(log),
//	)
//
//	engine := permission.NewEngine(cache)
//
// # Shared Cache Tier
//
// With multiple replicas, wrap the client in a GroupCache so each resolved
// principal is looked up once per TTL across the fleet:
//
//	rdb, err := redis.Connect(ctx, redisCfg) // integration/database/redis
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	shared := directory.NewGroupCache(client, rdb,
//		directory.WithGroupCacheTTL(5*time.Minute),
//	)
//	cache := directory.NewMembershipCache(shared)
//
// Redis being down never surfaces to permission checks: GroupCache falls
// through to the inner client, and MembershipCache absorbs whatever error
// remains.
//
// # Staleness
//
// Cached group sets are immutable once stored and live for the configured
// TTL. The TTL is the upper bound on how long a revoked group membership can
// still grant access; keep it short (the 30s default) unless directory load
// forces it up. Invalidate drops a principal's entry when a change is known.
package directory
