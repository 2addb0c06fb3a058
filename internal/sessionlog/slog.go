package sessionlog

import (
	"context"
	"log/slog"
)

// SlogService writes each event as a structured log line.
type SlogService struct {
	logger *slog.Logger
}

func NewSlogService(logger *slog.Logger) *SlogService {
	return &SlogService{logger: logger.With("component", "session_log")}
}

func (s *SlogService) Log(ctx context.Context, event Event) error {
	attrs := []any{
		"type", string(event.Type),
		"username", event.Username,
		"timestamp", event.Timestamp,
		"session_id", event.SessionID,
	}
	if event.CausedBy != CausedByNone {
		attrs = append(attrs, "caused_by", string(event.CausedBy))
	}

	s.logger.InfoContext(ctx, "Session event", attrs...)
	return nil
}
