// Package permission implements the access-control model for shared
// sessions: ordered permission levels, visibility defaults, explicit
// user/group grants, and a stateless decision engine.
//
// # Model
//
// Access to a resource is decided from four inputs:
//
//   - Ownership: the owner always holds edit (and therefore read). No ACL
//     change can revoke it.
//   - Visibility: a resource-wide default. Private and Shared rely entirely
//     on explicit grants; Workspace gives every authenticated principal
//     implicit read (never edit).
//   - User grants: an explicit (user, level) ACL entry.
//   - Group grants: an explicit (group, level) ACL entry matched against the
//     principal's directory groups.
//
// Levels are ordered: LevelEdit satisfies a LevelRead requirement. The set
// is closed at two levels by design.
//
// # Basic Usage
//
//	import "github.com/slidecraft/sessionkit/core/permission"
//
//	engine := permission.NewEngine(membershipCache)
//
//	res := permission.Resource{
//		OwnerID:    "alice@example.com",
//		Visibility: permission.VisibilityPrivate,
//		ACL: permission.ACL{
//			{Type: permission.PrincipalUser, PrincipalID: "bob@example.com", Level: permission.LevelRead},
//		},
//	}
//
//	if engine.Check(ctx, "bob@example.com", res, permission.LevelRead) {
//		// bob may read
//	}
//
//	// Fail-fast variant for service call sites:
//	if err := engine.Require(ctx, "bob@example.com", res, permission.LevelEdit); err != nil {
//		// errors.Is(err, permission.ErrDenied)
//	}
//
// # Owner-Gated Administration
//
// Changing who else has access (granting, revoking, visibility changes) is
// gated on ownership, not on holding edit:
//
//	if err := engine.RequireOwner(principalID, res); err != nil {
//		// an edit grant is not enough to manage the ACL
//	}
//
// # Ownerless Resources
//
// A Resource with an empty OwnerID models a legacy or system-created entity.
// Every authenticated principal may read it; nobody may edit it, since no
// owner exists to authorize escalation. This asymmetry is intentional and
// stable: such resources cannot acquire grants because Grant operations are
// owner-gated.
//
// # Group Resolution
//
// Group grants are the only step that may leave the process, so the engine
// resolves them last and only when ownership, visibility, and user grants
// were not conclusive. The GroupResolver contract is infallible: resolvers
// absorb directory failures and return a conservative set (see the
// core/directory package), which can only make a decision more restrictive.
// Constructing the engine with a nil resolver disables group grants
// entirely.
//
// # Thread Safety
//
// The engine is stateless and safe for concurrent use. ACL values follow
// value semantics; use ACL.Clone when handing snapshots across goroutines.
package permission
