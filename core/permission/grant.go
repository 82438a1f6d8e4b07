package permission

// Grant gives a single user or group an access level on one resource.
type Grant struct {
	Type        PrincipalType
	PrincipalID string
	Level       Level
}

// Validate checks the grant shape before it is applied to an ACL.
func (g Grant) Validate() error {
	if !g.Type.Valid() {
		return ErrInvalidGrant
	}
	if g.PrincipalID == "" {
		return ErrInvalidGrant
	}
	if !g.Level.Valid() {
		return ErrInvalidGrant
	}
	return nil
}

// ACL is the set of explicit grants attached to a resource. It holds at most
// one entry per (Type, PrincipalID) pair; Upsert enforces that invariant.
type ACL []Grant

// Upsert adds the grant, replacing any existing entry for the same
// (Type, PrincipalID) pair. Grants are last-write-wins: re-granting with a
// different level overwrites, it never stacks.
func (a ACL) Upsert(g Grant) ACL {
	for i, existing := range a {
		if existing.Type == g.Type && existing.PrincipalID == g.PrincipalID {
			a[i] = g
			return a
		}
	}
	return append(a, g)
}

// Remove deletes the entry for the (Type, PrincipalID) pair. The boolean
// reports whether an entry was present; removing a missing grant is a normal
// outcome, not an error.
func (a ACL) Remove(t PrincipalType, principalID string) (ACL, bool) {
	for i, g := range a {
		if g.Type == t && g.PrincipalID == principalID {
			return append(a[:i], a[i+1:]...), true
		}
	}
	return a, false
}

// Find returns the entry for the (Type, PrincipalID) pair, if any.
func (a ACL) Find(t PrincipalType, principalID string) (Grant, bool) {
	for _, g := range a {
		if g.Type == t && g.PrincipalID == principalID {
			return g, true
		}
	}
	return Grant{}, false
}

// Clone returns an independent copy of the ACL so callers can hand out
// snapshots without sharing backing arrays.
func (a ACL) Clone() ACL {
	if a == nil {
		return nil
	}
	out := make(ACL, len(a))
	copy(out, a)
	return out
}
