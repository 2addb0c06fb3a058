package websession

import (
	"context"
	"fmt"
	"objectviewer/internal/authentication"
	"objectviewer/internal/breadcrumbs"
	"objectviewer/internal/sessionlog"
)

// Invalidate signs the user out: the authentication session is closed, the
// web session destroyed and a logout caused by the user is logged.
func (s *SessionManager) Invalidate(ctx context.Context) error {
	session := s.AuthenticationSession(ctx)

	var username string
	if session != nil {
		username = session.UserName
	}
	logID := s.logID(ctx)

	if err := s.auth.CloseSession(ctx, session); err != nil {
		s.logger.Error("Failed to close authentication session", "username", username, "error", err)
	}

	if err := s.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy web session: %w", err)
	}

	s.logEvent(ctx, sessionlog.Event{
		Type:      sessionlog.TypeLogout,
		Username:  username,
		CausedBy:  sessionlog.CausedByUser,
		SessionID: logID,
	})

	return nil
}

// Expire closes an authentication session that outlived its idle timeout.
// It runs outside of any request, so the web session itself is left to scs;
// its stale binding is dropped on the next IsSignedIn. A session touched or
// closed since it was listed is left alone and the error from
// authentication.Manager.CloseIfIdle is returned.
func (s *SessionManager) Expire(ctx context.Context, session *authentication.Session) error {
	if session == nil {
		return nil
	}

	if err := s.auth.CloseIfIdle(ctx, session); err != nil {
		return err
	}

	sessionID := session.WebSessionID
	if sessionID == "" {
		sessionID = session.Code
	}

	s.logEvent(ctx, sessionlog.Event{
		Type:      sessionlog.TypeLogout,
		Username:  session.UserName,
		CausedBy:  sessionlog.CausedBySessionExpiration,
		SessionID: sessionID,
	})

	return nil
}

// Detach drops per-request state before the session is committed.
func (s *SessionManager) Detach(ctx context.Context) {
	if model, ok := s.Get(ctx, string(SessionKeyBreadcrumbs)).(*breadcrumbs.BreadcrumbModel); ok && model.Current != nil {
		model.Detach()
		s.Put(ctx, string(SessionKeyBreadcrumbs), model)
	}
}

// ReplaceSession is called on sign in. Keeping the token stable is the
// default; sessions.renew_token_on_login turns rotation on.
func (s *SessionManager) ReplaceSession(ctx context.Context) error {
	if !s.renewToken {
		return nil
	}

	if err := s.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session token: %w", err)
	}
	return nil
}
