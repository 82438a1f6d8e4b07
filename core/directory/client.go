package directory

import "context"

// Client is the external group-membership lookup contract. Implementations
// wrap whatever directory the deployment uses (Workspace directory, LDAP,
// an IdP API) and are expected to be idempotent and safe to call repeatedly.
//
// Lookups must be bounded by a timeout on the implementation side; the cache
// treats a timeout like any other failure and fails closed.
type Client interface {
	// GroupsOf returns the group identifiers the principal belongs to.
	// Returning an empty slice with a nil error means "known principal, no
	// groups"; an error means the answer is unknown.
	GroupsOf(ctx context.Context, principalID string) ([]string, error)
}

// ClientFunc adapts a plain function to the Client interface.
type ClientFunc func(ctx context.Context, principalID string) ([]string, error)

func (f ClientFunc) GroupsOf(ctx context.Context, principalID string) ([]string, error) {
	return f(ctx, principalID)
}
