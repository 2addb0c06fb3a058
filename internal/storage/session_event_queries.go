package storage

import (
	"context"
	"fmt"
	"objectviewer/internal/sessionlog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock-style fakes.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type SessionEventQueries struct {
	db querier
}

func NewSessionEventQueries(db querier) *SessionEventQueries {
	return &SessionEventQueries{db: db}
}

func (q *SessionEventQueries) InsertSessionEvent(ctx context.Context, event sessionlog.Event) error {
	query := `
		INSERT INTO session_events (event_type, username, caused_by, session_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	result, err := q.db.Exec(ctx, query,
		string(event.Type),
		event.Username,
		string(event.CausedBy),
		event.SessionID,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session event: %w", err)
	}

	if result.RowsAffected() != 1 {
		return fmt.Errorf("failed to insert session event: %d rows inserted", result.RowsAffected())
	}

	return nil
}

func (q *SessionEventQueries) GetRecentSessionEvents(ctx context.Context, limit int) ([]sessionlog.Event, error) {
	query := `
		SELECT event_type, username, caused_by, session_id, occurred_at
		FROM session_events
		ORDER BY occurred_at DESC
		LIMIT $1
	`

	rows, err := q.db.Query(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query recent session events: %w", err)
	}

	return collectEvents(rows)
}

func (q *SessionEventQueries) GetSessionEventsByUser(ctx context.Context, username string, limit int) ([]sessionlog.Event, error) {
	query := `
		SELECT event_type, username, caused_by, session_id, occurred_at
		FROM session_events
		WHERE username = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`

	rows, err := q.db.Query(ctx, query, username, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query session events for user: %w", err)
	}

	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]sessionlog.Event, error) {
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (sessionlog.Event, error) {
		var (
			e         sessionlog.Event
			eventType string
			causedBy  string
		)
		if err := row.Scan(&eventType, &e.Username, &causedBy, &e.SessionID, &e.Timestamp); err != nil {
			return e, err
		}
		e.Type = sessionlog.Type(eventType)
		e.CausedBy = sessionlog.CausedBy(causedBy)
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan session events: %w", err)
	}

	return events, nil
}
