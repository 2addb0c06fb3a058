package authentication

import (
	"context"
	"fmt"
)

const externalAuthenticatorName = "oidc"

// ExternalAuthenticator accepts identities verified by an external identity
// provider and maps their groups onto viewer roles.
type ExternalAuthenticator struct {
	groupRoles map[string][]string
}

func NewExternalAuthenticator(groupRoles map[string][]string) *ExternalAuthenticator {
	return &ExternalAuthenticator{groupRoles: groupRoles}
}

func (a *ExternalAuthenticator) Name() string {
	return externalAuthenticatorName
}

func (a *ExternalAuthenticator) CanAuthenticate(req any) bool {
	_, ok := req.(*ExternalRequest)
	return ok
}

func (a *ExternalAuthenticator) Authenticate(_ context.Context, req any) (*Identity, error) {
	r, ok := req.(*ExternalRequest)
	if !ok {
		return nil, fmt.Errorf("unsupported request type %T", req)
	}

	if r.Username == "" && r.Subject == "" {
		return nil, ErrAuthenticationFailed
	}

	username := getPreferredValue(r.Username, r.Email, r.Subject)

	roleLists := make([][]string, 0, len(r.Groups))
	for _, group := range r.Groups {
		roleLists = append(roleLists, a.groupRoles[group])
	}

	return &Identity{
		Username:    username,
		DisplayName: getPreferredValue(r.DisplayName, username),
		Roles:       mergeRoles(roleLists...),
	}, nil
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
