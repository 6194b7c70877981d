package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-assistant/internal/telemetry/domain"
)

// syncEmitter records events under a lock and optionally waits before returning.
type syncEmitter struct {
	mu      sync.Mutex
	events  []*domain.CommandEvent
	emitErr error
	delay   time.Duration
}

func (m *syncEmitter) Emit(ctx context.Context, event *domain.CommandEvent) error {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.delay):
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.emitErr
}

func (m *syncEmitter) getEvents() []*domain.CommandEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

func TestAsyncEmitter_NilCases(t *testing.T) {
	ctx := context.Background()

	var nilEmitter *AsyncEmitter
	assert.NoError(t, nilEmitter.Emit(ctx, &domain.CommandEvent{Command: "add"}))
	assert.NoError(t, nilEmitter.Drain(ctx))

	assert.NoError(t, NewAsyncEmitter(nil, nil).Emit(ctx, &domain.CommandEvent{Command: "add"}))

	inner := &syncEmitter{}
	a := NewAsyncEmitter(inner, nil)
	assert.NoError(t, a.Emit(ctx, nil))
	require.NoError(t, a.Drain(ctx))
	assert.Empty(t, inner.getEvents())
}

func TestAsyncEmitter_DeliversAfterDrain(t *testing.T) {
	inner := &syncEmitter{}
	a := NewAsyncEmitter(inner, nil)
	ctx := context.Background()

	require.NoError(t, a.Emit(ctx, &domain.CommandEvent{Command: "add", Outcome: domain.OutcomeOK}))
	require.NoError(t, a.Emit(ctx, &domain.CommandEvent{Command: "phone", Outcome: domain.OutcomeNotFound}))
	require.NoError(t, a.Drain(ctx))

	events := inner.getEvents()
	require.Len(t, events, 2)
	commands := []string{events[0].Command, events[1].Command}
	assert.ElementsMatch(t, []string{"add", "phone"}, commands)
}

func TestAsyncEmitter_CopiesEvent(t *testing.T) {
	inner := &syncEmitter{delay: 10 * time.Millisecond}
	a := NewAsyncEmitter(inner, nil)
	ctx := context.Background()

	event := &domain.CommandEvent{Command: "add"}
	require.NoError(t, a.Emit(ctx, event))
	event.Command = "mutated"
	require.NoError(t, a.Drain(ctx))

	require.Len(t, inner.getEvents(), 1)
	assert.Equal(t, "add", inner.getEvents()[0].Command)
}

func TestAsyncEmitter_CallerCancelDoesNotAbort(t *testing.T) {
	inner := &syncEmitter{delay: 20 * time.Millisecond}
	a := NewAsyncEmitter(inner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, a.Emit(ctx, &domain.CommandEvent{Command: "save"}))
	cancel()

	require.NoError(t, a.Drain(context.Background()))
	assert.Len(t, inner.getEvents(), 1)
}

func TestAsyncEmitter_InnerErrorIsSwallowed(t *testing.T) {
	inner := &syncEmitter{emitErr: errors.New("exporter down")}
	a := NewAsyncEmitter(inner, nil)
	ctx := context.Background()

	assert.NoError(t, a.Emit(ctx, &domain.CommandEvent{Command: "add"}))
	assert.NoError(t, a.Drain(ctx))
}

func TestAsyncEmitter_DrainHonoursContext(t *testing.T) {
	inner := &syncEmitter{delay: time.Second}
	a := NewAsyncEmitter(inner, nil)
	require.NoError(t, a.Emit(context.Background(), &domain.CommandEvent{Command: "add"}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.Drain(ctx), context.DeadlineExceeded)
}
