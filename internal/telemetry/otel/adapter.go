package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"contact-assistant/internal/telemetry"
	"contact-assistant/internal/telemetry/domain"
)

// NewEventEmitter returns an EventEmitter that sends command events as OTel log records via the given LoggerProvider.
// If provider is nil, returns a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: provider.Logger("contact-assistant.commands")}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *domain.CommandEvent) error { return nil }

type otelEmitter struct {
	logger otellog.Logger
}

// Emit converts the command event to an OTel log record and emits it.
func (e *otelEmitter) Emit(ctx context.Context, event *domain.CommandEvent) error {
	if event == nil {
		return nil
	}
	rec := otellog.Record{}
	rec.SetTimestamp(event.CreatedAt)
	if rec.Timestamp().IsZero() {
		rec.SetTimestamp(time.Now().UTC())
	}
	rec.SetEventName("assistant.command")
	rec.SetBody(otellog.StringValue(event.Command))
	if event.Outcome != domain.OutcomeOK {
		rec.SetSeverity(otellog.SeverityWarn)
	} else {
		rec.SetSeverity(otellog.SeverityInfo)
	}
	rec.AddAttributes(
		otellog.String("command", event.Command),
		otellog.String("outcome", string(event.Outcome)),
		otellog.Int("arg_count", event.ArgCount),
		otellog.Int64("duration_ms", event.Duration.Milliseconds()),
	)
	e.logger.Emit(ctx, rec)
	return nil
}
