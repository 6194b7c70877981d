package repository

import (
	"context"

	"contact-assistant/internal/contact/domain"
)

// Repository loads and saves a whole address book.
type Repository interface {
	// Load returns the persisted address book, or an empty one if nothing has been saved yet.
	Load(ctx context.Context) (*domain.AddressBook, error)
	// Save replaces the persisted state with book.
	Save(ctx context.Context, book *domain.AddressBook) error
}
