package sessionlog

import (
	"context"
	"fmt"
)

// EventStore is the persistence the StorageService writes through.
type EventStore interface {
	InsertSessionEvent(ctx context.Context, event Event) error
}

type StorageService struct {
	store EventStore
}

func NewStorageService(store EventStore) *StorageService {
	return &StorageService{store: store}
}

func (s *StorageService) Log(ctx context.Context, event Event) error {
	if err := s.store.InsertSessionEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to persist session event: %w", err)
	}
	return nil
}
