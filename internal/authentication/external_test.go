package authentication

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalAuthenticator(t *testing.T) {
	auth := NewExternalAuthenticator(map[string][]string{
		"admins":     {"admin", "auditor"},
		"developers": {"developer", "auditor"},
	})
	ctx := context.Background()

	t.Run("maps groups to roles", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, &ExternalRequest{
			Subject:     "123",
			Username:    "steve",
			DisplayName: "Steve",
			Groups:      []string{"admins", "developers", "unmapped"},
		})
		require.NoError(t, err)
		assert.Equal(t, "steve", identity.Username)
		assert.Equal(t, "Steve", identity.DisplayName)
		assert.Equal(t, []string{"admin", "auditor", "developer"}, identity.Roles)
	})

	t.Run("falls back to email then subject", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, &ExternalRequest{Subject: "123", Email: "steve@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "steve@example.com", identity.Username)

		identity, err = auth.Authenticate(ctx, &ExternalRequest{Subject: "123"})
		require.NoError(t, err)
		assert.Equal(t, "123", identity.Username)
		assert.Equal(t, "123", identity.DisplayName)
	})

	t.Run("rejects anonymous identities", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, &ExternalRequest{})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("only handles external requests", func(t *testing.T) {
		assert.True(t, auth.CanAuthenticate(&ExternalRequest{}))
		assert.False(t, auth.CanAuthenticate(&Request{}))
	})
}
