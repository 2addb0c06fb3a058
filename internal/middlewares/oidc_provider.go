package middlewares

import (
	"objectviewer/internal/authentication"
)

//go:generate mockgen -source=oidc_provider.go -destination=../mocks/oidc.go -package=mocks

// OIDCProvider runs the authorization code flow. State, nonce and PKCE
// verifier live in the web session between the two calls.
type OIDCProvider interface {
	// StartLogin returns the provider URL to send the browser to.
	StartLogin(ctx *AppContext) (string, error)
	// HandleCallback verifies the provider's redirect. Failures the browser
	// should see are *auth.OIDCError values carrying a redirect URL.
	HandleCallback(ctx *AppContext) (*authentication.ExternalRequest, error)
}
