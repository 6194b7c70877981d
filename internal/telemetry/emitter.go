// Package telemetry instruments assistant commands with OpenTelemetry spans, metrics and events.
package telemetry

import (
	"context"

	"contact-assistant/internal/telemetry/domain"
)

// EventEmitter emits command events (e.g. to OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.CommandEvent) error
}
