// migrate applies or rolls back the contacts and contact_phones tables used by STORAGE_BACKEND=postgres.
// The assistant does the same at startup when AUTO_MIGRATE is on; this binary is for running it ahead
// of time or undoing it:
//
//	go run ./cmd/migrate [-direction up|down]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"contact-assistant/internal/config"
	"contact-assistant/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	dir, err := migrate.ParseDirection(*direction)
	if err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
		os.Exit(1)
	}

	if err := migrate.Run(cfg.DatabaseURL, dir); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			// Already at target version; success.
			return
		}
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
