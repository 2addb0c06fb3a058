package jobs

import (
	"context"
	"errors"
	"log/slog"
	"objectviewer/internal/authentication"
	"objectviewer/internal/metrics"
	"time"
)

// SessionSource lists idle authentication sessions. *authentication.Manager
// satisfies it.
type SessionSource interface {
	Expired(ctx context.Context, idle time.Duration) ([]*authentication.Session, error)
	ActiveSessions(ctx context.Context) (int, error)
}

// SessionExpirer closes one session and records why.
type SessionExpirer interface {
	Expire(ctx context.Context, session *authentication.Session) error
}

// SessionExpiryJob closes authentication sessions idle for longer than the
// configured timeout. With a shared registry one instance is enough, so it
// runs on the leader only.
type SessionExpiryJob struct {
	sessions     SessionSource
	expirer      SessionExpirer
	idleTimeout  time.Duration
	interval     time.Duration
	registryType string
	logger       *slog.Logger
}

func NewSessionExpiryJob(sessions SessionSource, expirer SessionExpirer, idleTimeout, interval time.Duration, registryType string, logger *slog.Logger) *SessionExpiryJob {
	return &SessionExpiryJob{
		sessions:     sessions,
		expirer:      expirer,
		idleTimeout:  idleTimeout,
		interval:     interval,
		registryType: registryType,
		logger:       logger,
	}
}

func (j *SessionExpiryJob) Name() string {
	return sessionExpiryJobName
}

func (j *SessionExpiryJob) RequiresLeadership() bool {
	return true
}

func (j *SessionExpiryJob) Interval() time.Duration {
	return j.interval
}

func (j *SessionExpiryJob) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// sweep is a single pass. Failures on one session do not stop the others.
func (j *SessionExpiryJob) sweep(ctx context.Context) {
	expired, err := j.sessions.Expired(ctx, j.idleTimeout)
	if err != nil {
		j.logger.Error("Failed to list expired sessions", "error", err)
		return
	}

	closed := 0
	for _, session := range expired {
		err := j.expirer.Expire(ctx, session)
		if errors.Is(err, authentication.ErrSessionActive) || errors.Is(err, authentication.ErrSessionNotFound) {
			j.logger.Debug("Session no longer idle, skipping", "username", session.UserName, "reason", err)
			continue
		}
		if err != nil {
			j.logger.Warn("Failed to expire session", "username", session.UserName, "error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		metrics.ExpiredSessionsTotal.Add(float64(closed))
		j.logger.Debug("Expired idle sessions", "count", closed)
	}

	active, err := j.sessions.ActiveSessions(ctx)
	if err != nil {
		j.logger.Warn("Failed to count active sessions", "error", err)
		return
	}
	metrics.ActiveSessions.WithLabelValues(j.registryType).Set(float64(active))
}
