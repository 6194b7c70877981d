package telemetry

import (
	"context"
	"errors"

	"contact-assistant/internal/telemetry/domain"
)

type multiEmitter []EventEmitter

// MultiEmitter returns an EventEmitter that sends each event to every non-nil emitter in order.
// All emitters are tried; their errors are joined.
func MultiEmitter(emitters ...EventEmitter) EventEmitter {
	var m multiEmitter
	for _, e := range emitters {
		if e != nil {
			m = append(m, e)
		}
	}
	return m
}

func (m multiEmitter) Emit(ctx context.Context, event *domain.CommandEvent) error {
	var errs []error
	for _, e := range m {
		if err := e.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
