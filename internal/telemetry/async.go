package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contact-assistant/internal/telemetry/domain"
)

// emitTimeout bounds a single asynchronous emit.
const emitTimeout = 5 * time.Second

// AsyncEmitter forwards events to another EventEmitter on a goroutine so a command never waits on export.
// Errors are logged. Call Drain before shutting down the providers the inner emitter writes to.
type AsyncEmitter struct {
	inner  EventEmitter
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewAsyncEmitter wraps inner. logger may be nil.
func NewAsyncEmitter(inner EventEmitter, logger *slog.Logger) *AsyncEmitter {
	return &AsyncEmitter{inner: inner, logger: logger}
}

// Emit starts delivery of a copy of event and returns immediately. The caller's cancellation does not
// abort an in-flight emit; each emit gets its own timeout.
func (a *AsyncEmitter) Emit(ctx context.Context, event *domain.CommandEvent) error {
	if a == nil || a.inner == nil || event == nil {
		return nil
	}
	ev := *event
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
		defer cancel()
		if err := a.inner.Emit(emitCtx, &ev); err != nil && a.logger != nil {
			a.logger.Warn("telemetry: async emit failed", "command", ev.Command, "error", err)
		}
	}()
	return nil
}

// Drain waits for in-flight emits to finish or for ctx to be done.
func (a *AsyncEmitter) Drain(ctx context.Context) error {
	if a == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
