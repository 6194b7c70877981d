// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// StorageBackend selects where the address book is persisted: "file" or "postgres".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	// DataFile is the path of the JSON snapshot used by the file backend.
	DataFile string `mapstructure:"DATA_FILE"`
	// DatabaseURL is the Postgres DSN; required when StorageBackend is "postgres".
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// AutoMigrate applies embedded migrations at startup when using Postgres.
	AutoMigrate bool `mapstructure:"AUTO_MIGRATE"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// ColorOutput enables ANSI colours in command output.
	ColorOutput bool `mapstructure:"COLOR_OUTPUT"`
	// Env is the application environment (e.g. "development"); logged at startup.
	Env string `mapstructure:"APP_ENV"`

	// Telemetry (optional). When the endpoint is set, command spans, metrics and events are exported via OTLP gRPC.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTLPInsecure forces a plaintext connection to the OTLP endpoint.
	OTLPInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`

	// TelemetryKafkaBrokers is a comma-separated broker list. When set, command events are also published to Kafka.
	TelemetryKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// TelemetryKafkaTopic is the topic command events are published to and consumed from.
	TelemetryKafkaTopic string `mapstructure:"TELEMETRY_KAFKA_TOPIC"`
	// KafkaGroupID is the consumer group used by cmd/worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
	// LokiURL is the Loki base URL cmd/worker pushes events to.
	LokiURL string `mapstructure:"LOKI_URL"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored. Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("STORAGE_BACKEND", BackendFile)
	v.SetDefault("DATA_FILE", "addressbook.json")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("COLOR_OUTPUT", true)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("TELEMETRY_KAFKA_TOPIC", "assistant-events")
	v.SetDefault("KAFKA_GROUP_ID", "assistant-events-worker")
	v.SetDefault("LOKI_URL", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	switch cfg.StorageBackend {
	case BackendFile:
		if strings.TrimSpace(cfg.DataFile) == "" {
			return nil, errors.New("config: DATA_FILE must be set when STORAGE_BACKEND=file")
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, errors.New("config: DATABASE_URL must be set when STORAGE_BACKEND=postgres")
		}
	default:
		return nil, errors.New("config: STORAGE_BACKEND must be file or postgres")
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("config: LOG_LEVEL must be one of debug, info, warn, error")
	}

	return &cfg, nil
}

// UsePostgres reports whether the address book is stored in Postgres.
func (c *Config) UsePostgres() bool {
	return c != nil && c.StorageBackend == BackendPostgres
}

// TelemetryKafkaBrokersList returns KAFKA_BROKERS split on commas with blanks dropped, or nil if unset.
func (c *Config) TelemetryKafkaBrokersList() []string {
	if c == nil || c.TelemetryKafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.TelemetryKafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
