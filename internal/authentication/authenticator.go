package authentication

import "context"

//go:generate mockgen -source=authenticator.go -destination=../mocks/authenticator.go -package=mocks

// Authenticator verifies one kind of authentication request.
type Authenticator interface {
	Name() string
	CanAuthenticate(req any) bool
	// Authenticate returns ErrAuthenticationFailed when the credentials are
	// rejected. Any other error is an infrastructure failure.
	Authenticate(ctx context.Context, req any) (*Identity, error)
}
