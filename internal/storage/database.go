package storage

import (
	"context"
	"fmt"
	"objectviewer/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DatabaseProvider struct {
	pool *pgxpool.Pool
	*SessionEventQueries
}

func NewDatabaseProvider(ctx context.Context, cfg *config.StorageConfig) (*DatabaseProvider, error) {
	poolConfig, err := pgxpool.ParseConfig(GetConnectionStringFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseProvider{
		pool:                dbPool,
		SessionEventQueries: NewSessionEventQueries(dbPool),
	}, nil
}

func (p *DatabaseProvider) GetPool() *pgxpool.Pool {
	return p.pool
}

func (p *DatabaseProvider) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *DatabaseProvider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS session_events (
    id          BIGSERIAL PRIMARY KEY,
    event_type  TEXT        NOT NULL,
    username    TEXT        NOT NULL DEFAULT '',
    caused_by   TEXT        NOT NULL DEFAULT '',
    session_id  TEXT        NOT NULL,
    occurred_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS session_events_username_idx ON session_events (username, occurred_at DESC);
CREATE INDEX IF NOT EXISTS session_events_occurred_at_idx ON session_events (occurred_at DESC);
`

func (p *DatabaseProvider) RunMigrations(ctx context.Context) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
