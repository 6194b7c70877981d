// seed adds sample contacts to the configured store for local testing.
// Idempotent: contacts whose name already exists are left untouched.
package main

import (
	"context"
	"fmt"
	"os"

	"contact-assistant/internal/config"
	"contact-assistant/internal/contact/domain"
	"contact-assistant/internal/contact/repository"
	"contact-assistant/internal/logger"
)

type sampleContact struct {
	name     string
	phones   []string
	birthday string
}

var samples = []sampleContact{
	{name: "John", phones: []string{"1234567890", "5555555555"}, birthday: "15.06.1990"},
	{name: "Jane", phones: []string{"9876543210"}, birthday: "12.06.1985"},
	{name: "Alex", phones: []string{"0501234567"}},
	{name: "Maria", phones: []string{"0677654321"}, birthday: "29.02.1996"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	repo, closeRepo, err := repository.Open(ctx, cfg, log)
	if err != nil {
		log.Error("seed: open storage", "error", err)
		os.Exit(1)
	}
	defer func() { _ = closeRepo() }()

	book, err := repo.Load(ctx)
	if err != nil {
		log.Error("seed: load", "error", err)
		os.Exit(1)
	}

	added, err := seed(book)
	if err != nil {
		log.Error("seed: build sample contacts", "error", err)
		os.Exit(1)
	}
	if added == 0 {
		log.Info("seed: sample contacts already present, skipping")
		return
	}
	if err := repo.Save(ctx, book); err != nil {
		log.Error("seed: save", "error", err)
		os.Exit(1)
	}
	log.Info("seed: done", "added", added, "total", book.Len())
}

// seed adds every sample whose name is not yet in book and returns how many were added.
func seed(book *domain.AddressBook) (int, error) {
	added := 0
	for _, s := range samples {
		if _, ok := book.Find(s.name); ok {
			continue
		}
		rec, err := domain.NewRecord(s.name)
		if err != nil {
			return added, err
		}
		for _, p := range s.phones {
			if err := rec.AddPhone(p); err != nil {
				return added, fmt.Errorf("%s: %w", s.name, err)
			}
		}
		if s.birthday != "" {
			if err := rec.AddBirthday(s.birthday); err != nil {
				return added, fmt.Errorf("%s: %w", s.name, err)
			}
		}
		book.AddRecord(rec)
		added++
	}
	return added, nil
}
