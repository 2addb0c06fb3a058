package authentication

import (
	"slices"
	"time"
)

// Request is a username/password authentication attempt.
type Request struct {
	Username string
	Password string
	Roles    []string
}

func (r *Request) Kind() string {
	return KindPassword
}

// ExternalRequest carries an identity that an external identity provider has
// already verified, such as the claims of an OIDC ID token.
type ExternalRequest struct {
	Issuer      string
	Subject     string
	Username    string
	DisplayName string
	Email       string
	Groups      []string
	Roles       []string
}

func (r *ExternalRequest) Kind() string {
	return KindExternal
}

// Identity is what an Authenticator vouches for.
type Identity struct {
	Username    string
	DisplayName string
	Roles       []string
}

// Session is the authentication session bound to a web session once a user
// has signed in. Code is the value the Manager validates it by.
type Session struct {
	Code        string   `json:"code"`
	UserName    string   `json:"username"`
	DisplayName string   `json:"display_name,omitempty"`
	Roles       []string `json:"roles"`
	Source      string   `json:"source"`
	// WebSessionID ties the session to the log id of the web session it is
	// bound to, so events raised without a request can still name it.
	WebSessionID string    `json:"web_session_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastSeen     time.Time `json:"last_seen"`
}

func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Roles, role)
}

// mergeRoles concatenates role lists, dropping empties and duplicates while
// keeping first-seen order.
func mergeRoles(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, list := range lists {
		for _, role := range list {
			if role == "" {
				continue
			}
			if _, ok := seen[role]; ok {
				continue
			}
			seen[role] = struct{}{}
			merged = append(merged, role)
		}
	}
	return merged
}
