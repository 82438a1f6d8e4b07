// Package session manages the lifecycle of shared, access-controlled
// conversational sessions: creation under a per-owner cap, permission-gated
// reads and mutations, and time-based reclamation on a background schedule.
//
// The artifact a session carries (a generated document, a slide deck, any
// payload) stays opaque through the Data type parameter; this package moves
// it around but never looks inside.
//
// # Core Components
//
//   - Session[Data]: the session record — owner, visibility, ACL, payload,
//     activity timestamps.
//   - Repository[Data]: thread-safe in-memory store; the sole lock and
//     mutation boundary for session state.
//   - Service[Data]: the orchestrator the API layer calls; every operation
//     resolves the session, consults the permission engine, then applies
//     the change and records the activity.
//   - Limiter[Data]: per-owner cap on active sessions, self-healing via an
//     opportunistic owner-scoped reap.
//   - Reaper[Data]: cancellable background loop reclaiming idle sessions
//     and invoking a release hook for each.
//
// # Basic Usage
//
//	import (
//		"github.com/slidecraft/sessionkit/core/permission"
//		"github.com/slidecraft/sessionkit/core/session"
//	)
//
//	type Deck struct {
//		Markup string
//	}
//
//	repo := session.NewRepository[Deck]()
//	engine := permission.NewEngine(membershipCache)
//
//	svc, err := session.NewService(
//		session.WithRepository(repo),
//		session.WithEngine[Deck](engine),
//		session.WithConfig[Deck](
//			session.WithTTL(30*time.Minute),
//			session.WithMaxPerOwner(5),
//		),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err := svc.Create(ctx, "alice@example.com", permission.VisibilityPrivate)
//	if err != nil {
//		// errors.Is(err, session.ErrLimitExceeded) when alice is at her cap
//	}
//
//	got, err := svc.Get(ctx, "bob@example.com", sess.ID)
//	// errors.Is(err, permission.ErrDenied): bob has no grant yet
//
// # Background Reclamation
//
// Run one reaper per repository. It shares the service's Config so both
// agree on what "expired" means:
//
//	reaper := session.NewReaper(repo,
//		session.WithReaperConfig[Deck](svc.Config()),
//		session.WithOnReclaim(func(ctx context.Context, sess session.Session[Deck]) error {
//			return artifacts.Release(ctx, sess.Data) // free external resources
//		}),
//		session.WithReaperLogger[Deck](log),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(reaper.Run(ctx))
//
// Tests trigger a single deterministic pass with reaper.Sweep(ctx) instead
// of racing the ticker.
//
// # Error Mapping
//
// Service operations return typed, recoverable errors the HTTP layer maps
// to status codes:
//
//   - session.ErrNotFound: the id does not resolve (404). The error does
//     not reveal whether the session ever existed.
//   - permission.ErrDenied: the principal lacks the required level, or is
//     not the owner for ACL management (403).
//   - session.ErrLimitExceeded: creation rejected at the per-owner cap
//     (429); the message carries the configured maximum.
//   - session.ErrInvalidVisibility, permission.ErrInvalidGrant: malformed
//     input (400).
//
// Revoking a grant that does not exist is not an error: Revoke reports it
// through its boolean result.
//
// # Concurrency
//
// Per-session operations are linearizable: the repository serializes
// mutations per record, so concurrent grants on the same session all land
// and no update is lost. Operations on different sessions proceed in
// parallel. The reaper's sweep and caller operations on the same session
// are mutually exclusive per record; a session is never observed
// half-deleted. Sessions cross every boundary as value copies.
//
// # Configuration
//
// Config is env-taggable for core/config loading and adjustable in code:
//
//	var cfg session.Config
//	config.MustLoad(&cfg) // SESSION_TTL, SESSION_REAP_INTERVAL, ...
//
//	svc, err := session.NewServiceFromConfig(cfg,
//		session.WithRepository(repo),
//		session.WithEngine[Deck](engine),
//	)
package session
