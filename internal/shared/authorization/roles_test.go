package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole_FallsBackToUser(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole(""))
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
}

func TestParseStrictRole(t *testing.T) {
	r, err := ParseStrictRole("admin")
	require.NoError(t, err)
	assert.True(t, r.IsAdmin())

	_, err = ParseStrictRole("Admin")
	assert.Error(t, err)
}
