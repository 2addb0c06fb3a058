package authentication

import "errors"

const (
	KindPassword = "password"
	KindExternal = "external"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoAuthenticator      = errors.New("no authenticator can handle request")
	ErrSessionNotFound      = errors.New("authentication session not found")
	ErrSessionActive        = errors.New("authentication session was used after it was listed")
)
