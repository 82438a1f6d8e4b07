package permission

import "fmt"

// Level is an ordered access level. Edit satisfies Read; there are no other
// levels in the model.
type Level uint8

const (
	LevelRead Level = iota + 1
	LevelEdit
)

// Satisfies reports whether holding l is enough for an operation that
// requires the given level.
func (l Level) Satisfies(required Level) bool {
	return l >= required
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l == LevelRead || l == LevelEdit
}

func (l Level) String() string {
	switch l {
	case LevelRead:
		return "read"
	case LevelEdit:
		return "edit"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// ParseLevel converts the wire representation ("read", "edit") to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "read":
		return LevelRead, nil
	case "edit":
		return LevelEdit, nil
	default:
		return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidLevel, s)
	}
}

// Visibility is the session-wide default access applied to principals
// without an explicit grant.
type Visibility string

const (
	// VisibilityPrivate restricts access to the owner and explicit grants.
	VisibilityPrivate Visibility = "private"

	// VisibilityShared is identical to VisibilityPrivate for authorization
	// purposes. The distinction only drives UI grouping of sessions that
	// carry grants; the engine never branches on it.
	VisibilityShared Visibility = "shared"

	// VisibilityWorkspace gives every authenticated principal implicit
	// read access. It never grants edit.
	VisibilityWorkspace Visibility = "workspace"
)

// Valid reports whether v is one of the defined visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityWorkspace:
		return true
	default:
		return false
	}
}

// PrincipalType distinguishes the two grantee variants an ACL entry may
// reference. The set is closed: there are no domain- or anyone-grants.
type PrincipalType string

const (
	PrincipalUser  PrincipalType = "user"
	PrincipalGroup PrincipalType = "group"
)

// Valid reports whether t is one of the defined principal types.
func (t PrincipalType) Valid() bool {
	return t == PrincipalUser || t == PrincipalGroup
}
