package sessionlog

import (
	"context"
	"errors"
)

// Multi fans an event out to every service. All services are called even
// when some of them fail.
type Multi []Service

func (m Multi) Log(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Log(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
