// Package websession binds HTTP sessions to authentication sessions and keeps
// the per-session navigation models.
package websession

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"objectviewer/internal/authentication"
	"objectviewer/internal/config"
	"objectviewer/internal/metrics"
	"objectviewer/internal/sessionlog"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func init() {
	gob.Register(&authentication.Session{})
}

type SessionManager struct {
	*scs.SessionManager

	auth        *authentication.Manager
	sessionLog  sessionlog.Service
	logger      *slog.Logger
	renewToken  bool
	breadcrumbs config.BreadcrumbsConfig
}

// NewSessionManager builds the scs manager for the configured store. client
// is only used, and then required, for the redis store.
func NewSessionManager(logger *slog.Logger, cfg *config.Config, client *redis.Client, authManager *authentication.Manager, sessionLog sessionlog.Service) (*SessionManager, error) {
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis session store requires a redis client")
		}
		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.Lifetime
	sessionManager.IdleTimeout = cfg.Sessions.IdleTimeout

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{
		SessionManager: sessionManager,
		auth:           authManager,
		sessionLog:     sessionLog,
		logger:         logger,
		renewToken:     cfg.Sessions.RenewTokenOnLogin,
		breadcrumbs:    cfg.Breadcrumbs,
	}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

// Authenticate signs the user in with a password. Wrong credentials yield
// false without an error.
func (s *SessionManager) Authenticate(ctx context.Context, username, password string) (bool, error) {
	return s.signIn(ctx, &authentication.Request{
		Username: username,
		Password: password,
		Roles:    []string{RoleUser},
	})
}

// AuthenticateExternal signs in an identity an external provider has already
// verified.
func (s *SessionManager) AuthenticateExternal(ctx context.Context, req *authentication.ExternalRequest) (bool, error) {
	return s.signIn(ctx, req)
}

func (s *SessionManager) signIn(ctx context.Context, req any) (bool, error) {
	session, err := s.auth.Authenticate(ctx, req)
	if errors.Is(err, authentication.ErrAuthenticationFailed) {
		metrics.FailedLoginsTotal.Inc()
		s.signOutQuietly(ctx)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if previous := s.AuthenticationSession(ctx); previous != nil {
		if err := s.auth.CloseSession(ctx, previous); err != nil {
			s.logger.Warn("Failed to close previous authentication session", "error", err)
		}
	}

	if err := s.ReplaceSession(ctx); err != nil {
		return false, err
	}

	session.WebSessionID = s.logID(ctx)
	if err := s.auth.Update(ctx, session); err != nil {
		s.logger.Warn("Failed to record web session on authentication session", "error", err)
	}

	s.Put(ctx, string(SessionKeyAuthentication), session)
	s.logEvent(ctx, sessionlog.Event{
		Type:      sessionlog.TypeLogin,
		Username:  session.UserName,
		SessionID: session.WebSessionID,
	})

	return true, nil
}

// AuthenticationSession returns the authentication session bound to this web
// session, or nil.
func (s *SessionManager) AuthenticationSession(ctx context.Context) *authentication.Session {
	if session, ok := s.Get(ctx, string(SessionKeyAuthentication)).(*authentication.Session); ok {
		return session
	}
	return nil
}

// IsSignedIn reports whether a bound authentication session is still valid.
// A binding the authentication manager no longer knows about is dropped.
func (s *SessionManager) IsSignedIn(ctx context.Context) bool {
	session := s.AuthenticationSession(ctx)
	if session == nil {
		return false
	}

	if !s.auth.IsSessionValid(ctx, session) {
		s.Remove(ctx, string(SessionKeyAuthentication))
		return false
	}

	return true
}

// Roles returns nil when nobody is signed in and a non-nil slice otherwise,
// even after gob has decoded an empty role list as nil.
func (s *SessionManager) Roles(ctx context.Context) []string {
	if !s.IsSignedIn(ctx) {
		return nil
	}
	if roles := s.AuthenticationSession(ctx).Roles; roles != nil {
		return roles
	}
	return []string{}
}

// signOutQuietly drops the current binding after a failed sign in. No event
// is logged for it.
func (s *SessionManager) signOutQuietly(ctx context.Context) {
	previous := s.AuthenticationSession(ctx)
	if previous == nil {
		return
	}
	if err := s.auth.CloseSession(ctx, previous); err != nil {
		s.logger.Warn("Failed to close previous authentication session", "error", err)
	}
	s.Remove(ctx, string(SessionKeyAuthentication))
}

// Touch records activity on the bound authentication session.
func (s *SessionManager) Touch(ctx context.Context) error {
	session := s.AuthenticationSession(ctx)
	if session == nil {
		return nil
	}

	err := s.auth.Touch(ctx, session)
	if errors.Is(err, authentication.ErrSessionNotFound) {
		s.Remove(ctx, string(SessionKeyAuthentication))
		return nil
	}
	return err
}

// logID returns the identifier session events name this web session by,
// minting it on first use. It survives token renewal.
func (s *SessionManager) logID(ctx context.Context) string {
	id := s.GetString(ctx, string(SessionKeyLogID))
	if id == "" {
		id = uuid.NewString()
		s.Put(ctx, string(SessionKeyLogID), id)
	}
	return id
}

func (s *SessionManager) logEvent(ctx context.Context, event sessionlog.Event) {
	if s.sessionLog == nil {
		return
	}

	event.Timestamp = s.auth.Now()
	if err := s.sessionLog.Log(ctx, event); err != nil {
		s.logger.Error("Failed to log session event",
			"type", string(event.Type),
			"username", event.Username,
			"error", err)
	}
}
