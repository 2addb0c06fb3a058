package authentication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Manager authenticates requests against its authenticators and keeps track
// of the sessions it has handed out.
type Manager struct {
	authenticators []Authenticator
	registry       Registry
	logger         *slog.Logger
	now            func() time.Time
}

func NewManager(registry Registry, logger *slog.Logger, authenticators ...Authenticator) *Manager {
	return &Manager{
		authenticators: authenticators,
		registry:       registry,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) Now() time.Time {
	return m.now()
}

// Authenticate tries every authenticator able to handle req, in registration
// order. The first one to succeed produces a new registered Session.
func (m *Manager) Authenticate(ctx context.Context, req any) (*Session, error) {
	var requestRoles []string
	switch r := req.(type) {
	case *Request:
		requestRoles = r.Roles
	case *ExternalRequest:
		requestRoles = r.Roles
	}

	handled := false
	for _, authenticator := range m.authenticators {
		if !authenticator.CanAuthenticate(req) {
			continue
		}
		handled = true

		identity, err := authenticator.Authenticate(ctx, req)
		if errors.Is(err, ErrAuthenticationFailed) {
			m.logger.Debug("authenticator rejected credentials", "authenticator", authenticator.Name())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("authenticator %s failed: %w", authenticator.Name(), err)
		}

		now := m.now()
		session := &Session{
			Code:        uuid.NewString(),
			UserName:    identity.Username,
			DisplayName: identity.DisplayName,
			Roles:       mergeRoles(requestRoles, identity.Roles),
			Source:      authenticator.Name(),
			CreatedAt:   now,
			LastSeen:    now,
		}

		if err := m.registry.Put(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to register authentication session: %w", err)
		}

		return session, nil
	}

	if !handled {
		return nil, ErrNoAuthenticator
	}

	return nil, ErrAuthenticationFailed
}

// IsSessionValid reports whether s is still registered.
func (m *Manager) IsSessionValid(ctx context.Context, s *Session) bool {
	if s == nil || s.Code == "" {
		return false
	}

	_, err := m.registry.Get(ctx, s.Code)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		m.logger.Error("failed to look up authentication session", "error", err)
	}

	return err == nil
}

// Touch records activity on s.
func (m *Manager) Touch(ctx context.Context, s *Session) error {
	if s == nil {
		return nil
	}

	stored, err := m.registry.Get(ctx, s.Code)
	if err != nil {
		return err
	}

	stored.LastSeen = m.now()
	s.LastSeen = stored.LastSeen

	return m.registry.Put(ctx, stored)
}

// Update stores s as given, replacing the registered copy.
func (m *Manager) Update(ctx context.Context, s *Session) error {
	if s == nil || s.Code == "" {
		return ErrSessionNotFound
	}
	if _, err := m.registry.Get(ctx, s.Code); err != nil {
		return err
	}
	return m.registry.Put(ctx, s)
}

// CloseSession forgets s. A nil session is ignored.
func (m *Manager) CloseSession(ctx context.Context, s *Session) error {
	if s == nil {
		return nil
	}

	if err := m.registry.Delete(ctx, s.Code); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to close authentication session: %w", err)
	}

	return nil
}

// CloseIfIdle closes s unless the registered copy has seen activity since s
// was read, in which case ErrSessionActive is returned. A session that is
// already gone yields ErrSessionNotFound.
func (m *Manager) CloseIfIdle(ctx context.Context, s *Session) error {
	if s == nil || s.Code == "" {
		return ErrSessionNotFound
	}

	stored, err := m.registry.Get(ctx, s.Code)
	if err != nil {
		return err
	}
	if stored.LastSeen.After(s.LastSeen) {
		return ErrSessionActive
	}

	return m.CloseSession(ctx, stored)
}

// Expired lists sessions that have seen no activity for longer than idle.
func (m *Manager) Expired(ctx context.Context, idle time.Duration) ([]*Session, error) {
	sessions, err := m.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authentication sessions: %w", err)
	}

	cutoff := m.now().Add(-idle)
	expired := make([]*Session, 0)
	for _, s := range sessions {
		if s.LastSeen.Before(cutoff) {
			expired = append(expired, s)
		}
	}

	return expired, nil
}

func (m *Manager) ActiveSessions(ctx context.Context) (int, error) {
	return m.registry.Count(ctx)
}
