package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService([]Credential{
		{Username: "founder", Password: "focus2024", Role: "founder"},
		{Username: "teammate", Password: "hub123", Role: "member"},
	})
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestService()

	token, user, err := svc.Login("founder", "focus2024")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, RoleFounder, user.Role)

	resolved, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "founder", resolved.Username)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Login("founder", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "focus2024")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUnknownRoleDefaultsToMember(t *testing.T) {
	svc := NewService([]Credential{{Username: "x", Password: "y", Role: "admin"}})

	_, user, err := svc.Login("x", "y")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, user.Role)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.Login("teammate", "hub123")
	require.NoError(t, err)

	svc.Logout(token)
	_, err = svc.Resolve(token)
	assert.ErrorIs(t, err, ErrUnknownToken)

	svc.Logout("never-issued")
}

func TestTokensAreUnique(t *testing.T) {
	svc := newTestService()

	t1, _, err := svc.Login("teammate", "hub123")
	require.NoError(t, err)
	t2, _, err := svc.Login("teammate", "hub123")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
