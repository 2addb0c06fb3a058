package websession

// RoleUser is granted to every user who signs in with a password. RoleAdmin
// unlocks the session event history.
const (
	RoleUser  = "viewer.roles.USER"
	RoleAdmin = "viewer.roles.ADMIN"
)

type SessionKey string

const (
	SessionKeyAuthentication     SessionKey = "authentication"
	SessionKeyLogID              SessionKey = "log_id"
	SessionKeyBreadcrumbs        SessionKey = "breadcrumbs"
	SessionKeyBookmarks          SessionKey = "bookmarks"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOauthState         SessionKey = "oauth_state"
	SessionKeyOauthNonce         SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier  SessionKey = "oauth_code_verifier"
)
