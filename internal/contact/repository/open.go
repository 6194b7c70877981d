package repository

import (
	"context"
	"fmt"
	"log/slog"

	"contact-assistant/internal/config"
	"contact-assistant/internal/db"
	"contact-assistant/internal/db/migrate"
)

// Open returns the repository selected by cfg and a function that releases its resources.
// For Postgres it opens a pool and, when cfg.AutoMigrate is set, applies pending migrations first.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Repository, func() error, error) {
	if !cfg.UsePostgres() {
		logger.Info("using file storage", "path", cfg.DataFile)
		return NewFileRepository(cfg.DataFile), func() error { return nil }, nil
	}
	if cfg.AutoMigrate {
		if err := migrate.EnsureSchema(cfg.DatabaseURL); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database schema up to date")
	}
	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using postgres storage")
	return NewPostgresRepository(pool), pool.Close, nil
}
