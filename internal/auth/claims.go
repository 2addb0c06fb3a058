package auth

import (
	"objectviewer/internal/authentication"

	"github.com/coreos/go-oidc/v3/oidc"
)

type idTokenClaims struct {
	Sub               string   `json:"sub"`
	Iss               string   `json:"iss"`
	Nonce             string   `json:"nonce"`
	PreferredUsername string   `json:"preferred_username"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Groups            []string `json:"groups"`
}

// extractRequestFromToken turns ID token claims into an external
// authentication request and returns the nonce the token was issued for.
func extractRequestFromToken(idToken *oidc.IDToken) (*authentication.ExternalRequest, string, error) {
	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, "", err
	}

	return claimsToRequest(claims), claims.Nonce, nil
}

func claimsToRequest(claims idTokenClaims) *authentication.ExternalRequest {
	return &authentication.ExternalRequest{
		Issuer:      claims.Iss,
		Subject:     claims.Sub,
		Username:    claims.PreferredUsername,
		DisplayName: claims.Name,
		Email:       claims.Email,
		Groups:      claims.Groups,
	}
}

// getPreferredValue returns the first non-empty string from the provided values
func getPreferredValue(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
