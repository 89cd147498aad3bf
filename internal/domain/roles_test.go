package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllows(t *testing.T) {
	cases := []struct {
		held     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleUser, true},
		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleManager, false},
		{RoleUser, RoleUser, true},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, tc.held.Allows(tc.required),
			"held=%s required=%s", tc.held, tc.required)
	}
}

func TestRoleAllowsUnknownRoles(t *testing.T) {
	assert.False(t, Role("superuser").Allows(RoleUser))
	assert.False(t, Role("").Allows(RoleUser))
	assert.False(t, RoleAdmin.Allows(Role("owner")))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
}
