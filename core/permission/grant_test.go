package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidecraft/sessionkit/core/permission"
)

func TestACL_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("adds new entry", func(t *testing.T) {
		var acl permission.ACL
		acl = acl.Upsert(permission.Grant{
			Type:        permission.PrincipalUser,
			PrincipalID: "bob",
			Level:       permission.LevelRead,
		})

		require.Len(t, acl, 1)
		assert.Equal(t, permission.LevelRead, acl[0].Level)
	})

	t.Run("regrant overwrites instead of stacking", func(t *testing.T) {
		var acl permission.ACL
		acl = acl.Upsert(permission.Grant{Type: permission.PrincipalUser, PrincipalID: "bob", Level: permission.LevelRead})
		acl = acl.Upsert(permission.Grant{Type: permission.PrincipalUser, PrincipalID: "bob", Level: permission.LevelEdit})

		require.Len(t, acl, 1)
		assert.Equal(t, permission.LevelEdit, acl[0].Level)
	})

	t.Run("user and group with same id are distinct entries", func(t *testing.T) {
		var acl permission.ACL
		acl = acl.Upsert(permission.Grant{Type: permission.PrincipalUser, PrincipalID: "eng", Level: permission.LevelRead})
		acl = acl.Upsert(permission.Grant{Type: permission.PrincipalGroup, PrincipalID: "eng", Level: permission.LevelEdit})

		assert.Len(t, acl, 2)
	})
}

func TestACL_Remove(t *testing.T) {
	t.Parallel()

	base := permission.ACL{
		{Type: permission.PrincipalUser, PrincipalID: "bob", Level: permission.LevelRead},
		{Type: permission.PrincipalGroup, PrincipalID: "eng", Level: permission.LevelEdit},
	}

	t.Run("removes existing entry", func(t *testing.T) {
		acl, found := base.Clone().Remove(permission.PrincipalUser, "bob")
		assert.True(t, found)
		require.Len(t, acl, 1)
		assert.Equal(t, permission.PrincipalGroup, acl[0].Type)
	})

	t.Run("removing a missing entry reports not found", func(t *testing.T) {
		acl, found := base.Clone().Remove(permission.PrincipalUser, "nobody")
		assert.False(t, found)
		assert.Len(t, acl, 2)
	})

	t.Run("second removal reports not found", func(t *testing.T) {
		acl, found := base.Clone().Remove(permission.PrincipalUser, "bob")
		require.True(t, found)

		acl, found = acl.Remove(permission.PrincipalUser, "bob")
		assert.False(t, found)
		assert.Len(t, acl, 1)
	})
}

func TestACL_Find(t *testing.T) {
	t.Parallel()

	acl := permission.ACL{
		{Type: permission.PrincipalUser, PrincipalID: "bob", Level: permission.LevelEdit},
	}

	g, ok := acl.Find(permission.PrincipalUser, "bob")
	require.True(t, ok)
	assert.Equal(t, permission.LevelEdit, g.Level)

	_, ok = acl.Find(permission.PrincipalGroup, "bob")
	assert.False(t, ok)
}

func TestACL_Clone(t *testing.T) {
	t.Parallel()

	original := permission.ACL{
		{Type: permission.PrincipalUser, PrincipalID: "bob", Level: permission.LevelRead},
	}

	clone := original.Clone()
	clone[0].Level = permission.LevelEdit

	assert.Equal(t, permission.LevelRead, original[0].Level)
	assert.Nil(t, permission.ACL(nil).Clone())
}

func TestGrant_Validate(t *testing.T) {
	t.Parallel()

	valid := permission.Grant{
		Type:        permission.PrincipalUser,
		PrincipalID: "bob",
		Level:       permission.LevelRead,
	}
	require.NoError(t, valid.Validate())

	for name, g := range map[string]permission.Grant{
		"unknown type":   {Type: "robot", PrincipalID: "bob", Level: permission.LevelRead},
		"empty id":       {Type: permission.PrincipalUser, Level: permission.LevelRead},
		"zero level":     {Type: permission.PrincipalUser, PrincipalID: "bob"},
		"unknown level":  {Type: permission.PrincipalUser, PrincipalID: "bob", Level: permission.Level(9)},
		"missing fields": {},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, g.Validate(), permission.ErrInvalidGrant)
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	t.Run("edit satisfies read", func(t *testing.T) {
		assert.True(t, permission.LevelEdit.Satisfies(permission.LevelRead))
		assert.True(t, permission.LevelEdit.Satisfies(permission.LevelEdit))
		assert.True(t, permission.LevelRead.Satisfies(permission.LevelRead))
		assert.False(t, permission.LevelRead.Satisfies(permission.LevelEdit))
	})

	t.Run("parse round-trips", func(t *testing.T) {
		for _, level := range []permission.Level{permission.LevelRead, permission.LevelEdit} {
			parsed, err := permission.ParseLevel(level.String())
			require.NoError(t, err)
			assert.Equal(t, level, parsed)
		}
	})

	t.Run("parse rejects unknown", func(t *testing.T) {
		_, err := permission.ParseLevel("admin")
		assert.ErrorIs(t, err, permission.ErrInvalidLevel)
	})
}

func TestVisibility_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, permission.VisibilityPrivate.Valid())
	assert.True(t, permission.VisibilityShared.Valid())
	assert.True(t, permission.VisibilityWorkspace.Valid())
	assert.False(t, permission.Visibility("public").Valid())
	assert.False(t, permission.Visibility("").Valid())
}
