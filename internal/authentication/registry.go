package authentication

import (
	"context"
)

//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks

// Registry stores the authentication sessions handed out by a Manager.
type Registry interface {
	Put(ctx context.Context, s *Session) error
	// Get returns ErrSessionNotFound for unknown codes.
	Get(ctx context.Context, code string) (*Session, error)
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) ([]*Session, error)
	Count(ctx context.Context) (int, error)
}
