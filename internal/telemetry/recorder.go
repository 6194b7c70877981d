package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"contact-assistant/internal/telemetry/domain"
)

// instrumentationName scopes the tracer and meter.
const instrumentationName = "contact-assistant/assistant"

// Recorder wraps each command in a span, counts it, records its duration, and emits a CommandEvent.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	tracer   trace.Tracer
	commands metric.Int64Counter
	duration metric.Float64Histogram
	emitter  EventEmitter
	logger   *slog.Logger
	now      func() time.Time
}

// NewRecorder builds a Recorder from the given providers. emitter and logger may be nil.
func NewRecorder(tp trace.TracerProvider, mp metric.MeterProvider, emitter EventEmitter, logger *slog.Logger) (*Recorder, error) {
	meter := mp.Meter(instrumentationName)
	commands, err := meter.Int64Counter("assistant.commands",
		metric.WithDescription("Commands handled by the assistant, by command and outcome."))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("assistant.command.duration",
		metric.WithDescription("Time spent handling a command."),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		tracer:   tp.Tracer(instrumentationName),
		commands: commands,
		duration: duration,
		emitter:  emitter,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Start opens a span named "assistant.<command>" and returns a function that ends it with the outcome.
func (r *Recorder) Start(ctx context.Context, command string, argCount int) (context.Context, func(domain.Outcome)) {
	if r == nil {
		return ctx, func(domain.Outcome) {}
	}
	start := r.now()
	ctx, span := r.tracer.Start(ctx, "assistant."+command,
		trace.WithAttributes(
			attribute.String("assistant.command", command),
			attribute.Int("assistant.arg_count", argCount),
		))

	return ctx, func(outcome domain.Outcome) {
		elapsed := r.now().Sub(start)
		attrs := metric.WithAttributes(
			attribute.String("command", command),
			attribute.String("outcome", string(outcome)),
		)
		r.commands.Add(ctx, 1, attrs)
		r.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)

		span.SetAttributes(attribute.String("assistant.outcome", string(outcome)))
		if outcome == domain.OutcomeError {
			span.SetStatus(codes.Error, string(outcome))
		}
		span.End()

		if r.emitter == nil {
			return
		}
		event := &domain.CommandEvent{
			Command:   command,
			Outcome:   outcome,
			ArgCount:  argCount,
			Duration:  elapsed,
			CreatedAt: start.UTC(),
		}
		if err := r.emitter.Emit(ctx, event); err != nil && r.logger != nil {
			r.logger.WarnContext(ctx, "telemetry: emit command event failed", "command", command, "error", err)
		}
	}
}
