package storage

import (
	"context"
	"objectviewer/internal/sessionlog"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// noinspection GoNameStartsWithPackageName
type StorageProvider interface {
	Close()
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error

	InsertSessionEvent(ctx context.Context, event sessionlog.Event) error
	GetRecentSessionEvents(ctx context.Context, limit int) ([]sessionlog.Event, error)
	GetSessionEventsByUser(ctx context.Context, username string, limit int) ([]sessionlog.Event, error)
}
