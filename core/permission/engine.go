package permission

import (
	"context"
	"fmt"
)

// Resource is the authorization-relevant slice of a protected entity. The
// session package derives one from each session record; the engine never sees
// the payload or timestamps.
type Resource struct {
	// OwnerID is the principal that created the resource. Empty means a
	// legacy/system resource with no owner: readable by every authenticated
	// principal, editable by none.
	OwnerID    string
	Visibility Visibility
	ACL        ACL
}

// GroupResolver resolves a principal's current group memberships. It never
// fails: implementations absorb lookup errors and return a conservative
// (possibly empty) set, which can only make checks more restrictive.
type GroupResolver interface {
	GroupsOf(ctx context.Context, principalID string) []string
}

// Engine is a stateless access decision function. It performs no mutation and
// no I/O beyond the group resolver, which is only consulted when a decision
// cannot be reached from ownership, visibility, or user grants.
type Engine struct {
	groups GroupResolver
}

// NewEngine creates an engine backed by the given group resolver. A nil
// resolver disables group grants: group ACL entries simply never match.
func NewEngine(groups GroupResolver) *Engine {
	return &Engine{groups: groups}
}

// Check reports whether the principal holds the required level on the
// resource.
//
// The rule ladder, cheapest first:
//
//  1. An empty principal ID is unauthenticated and always denied.
//  2. The owner holds edit (hence read) unconditionally. Ownership is not
//     revocable through ACL manipulation.
//  3. A resource without an owner is readable by everyone and editable by
//     no one.
//  4. Workspace visibility grants read, never edit.
//  5. A user grant for the principal at a sufficient level.
//  6. A group grant for any of the principal's groups at a sufficient
//     level. Resolved last: the group lookup is the only step that may
//     leave the process.
func (e *Engine) Check(ctx context.Context, principalID string, res Resource, required Level) bool {
	if principalID == "" {
		return false
	}
	if res.OwnerID != "" && res.OwnerID == principalID {
		return true
	}
	if res.OwnerID == "" {
		return required == LevelRead
	}
	if required == LevelRead && res.Visibility == VisibilityWorkspace {
		return true
	}
	if g, ok := res.ACL.Find(PrincipalUser, principalID); ok && g.Level.Satisfies(required) {
		return true
	}
	if e.groups == nil {
		return false
	}
	for _, group := range e.groups.GroupsOf(ctx, principalID) {
		if g, ok := res.ACL.Find(PrincipalGroup, group); ok && g.Level.Satisfies(required) {
			return true
		}
	}
	return false
}

// Require is Check for call sites that want to fail fast: it returns
// ErrDenied (wrapped with the required level) instead of a boolean.
func (e *Engine) Require(ctx context.Context, principalID string, res Resource, required Level) error {
	if !e.Check(ctx, principalID, res, required) {
		return fmt.Errorf("%w: %s access required", ErrDenied, required)
	}
	return nil
}

// IsOwner reports whether the principal owns the resource. Ownerless
// resources have no owner, so this is false for every principal. Holding an
// edit grant does not make a principal the owner: ACL management stays
// owner-gated.
func (e *Engine) IsOwner(principalID string, res Resource) bool {
	return principalID != "" && res.OwnerID != "" && res.OwnerID == principalID
}

// RequireOwner returns ErrDenied unless the principal owns the resource.
func (e *Engine) RequireOwner(principalID string, res Resource) error {
	if !e.IsOwner(principalID, res) {
		return fmt.Errorf("%w: only the owner may manage access", ErrDenied)
	}
	return nil
}
