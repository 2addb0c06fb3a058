package sessionlog

import (
	"context"
	"objectviewer/internal/metrics"
)

// MetricsService counts events by type and cause.
type MetricsService struct{}

func (MetricsService) Log(_ context.Context, event Event) error {
	causedBy := string(event.CausedBy)
	if causedBy == "" {
		causedBy = "none"
	}
	metrics.SessionEventsTotal.WithLabelValues(string(event.Type), causedBy).Inc()
	return nil
}
