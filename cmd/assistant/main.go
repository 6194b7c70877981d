// assistant runs the interactive contact assistant on stdin/stdout.
// Storage, logging and telemetry are configured from the environment or .env (see internal/config).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-assistant/internal/assistant"
	"contact-assistant/internal/config"
	"contact-assistant/internal/contact/repository"
	"contact-assistant/internal/logger"
	"contact-assistant/internal/telemetry"
	otelsetup "contact-assistant/internal/telemetry/otel"
	"contact-assistant/internal/telemetry/producer"
)

const serviceName = "contact-assistant"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("assistant stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Debug("starting", "env", cfg.Env, "storage", cfg.StorageBackend)

	providers, err := otelsetup.NewProviders(ctx, cfg.OTLPEndpoint, serviceName, cfg.OTLPInsecure)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()
	providers.SetGlobal()
	if providers.Enabled() {
		log.Info("telemetry enabled", "endpoint", cfg.OTLPEndpoint)
	}

	sinks := []telemetry.EventEmitter{otelsetup.NewEventEmitter(providers.LoggerProvider)}
	if kafka := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic); kafka != nil {
		defer func() {
			if err := kafka.Close(); err != nil {
				log.Warn("close kafka producer", "error", err)
			}
		}()
		sinks = append(sinks, kafka)
		log.Info("publishing command events to kafka", "topic", kafka.Topic())
	}
	events := telemetry.NewAsyncEmitter(telemetry.MultiEmitter(sinks...), log)
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := events.Drain(drainCtx); err != nil {
			log.Warn("telemetry drain", "error", err)
		}
	}()
	recorder, err := telemetry.NewRecorder(providers.TracerProvider, providers.MeterProvider, events, log)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	repo, closeRepo, err := repository.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Warn("close storage", "error", err)
		}
	}()

	book, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load address book: %w", err)
	}
	log.Debug("address book loaded", "contacts", book.Len())

	bot := assistant.New(book, repo,
		assistant.WithRecorder(recorder),
		assistant.WithLogger(log),
		assistant.WithColor(cfg.ColorOutput),
	)
	return bot.Run(ctx, os.Stdin, os.Stdout)
}
