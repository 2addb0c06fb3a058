package authentication

import (
	"context"
	"objectviewer/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestPasswordAuthenticator(t *testing.T) {
	auth, err := NewPasswordAuthenticator([]config.UserConfig{
		{Username: "sven", DisplayName: "Sven Svensson", PasswordHash: hashPassword(t, "pass"), Roles: []string{"admin"}},
		{Username: "dick", PasswordHash: hashPassword(t, "pass")},
	})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, &Request{Username: "sven", Password: "pass"})
		require.NoError(t, err)
		assert.Equal(t, "sven", identity.Username)
		assert.Equal(t, "Sven Svensson", identity.DisplayName)
		assert.Equal(t, []string{"admin"}, identity.Roles)
	})

	t.Run("display name defaults to username", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, &Request{Username: "dick", Password: "pass"})
		require.NoError(t, err)
		assert.Equal(t, "dick", identity.DisplayName)
	})

	t.Run("wrong password", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, &Request{Username: "sven", Password: "nope"})
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, &Request{Username: "bob", Password: "pass"})
		assert.Nil(t, identity)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("only handles password requests", func(t *testing.T) {
		assert.True(t, auth.CanAuthenticate(&Request{}))
		assert.False(t, auth.CanAuthenticate(&ExternalRequest{}))
		assert.False(t, auth.CanAuthenticate("sven"))
	})
}

func TestNewPasswordAuthenticator_RejectsMalformedHash(t *testing.T) {
	_, err := NewPasswordAuthenticator([]config.UserConfig{{Username: "sven", PasswordHash: "plaintext"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password hash for user sven")
}
