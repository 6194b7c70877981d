package repository

import (
	"encoding/json"
	"fmt"

	"contact-assistant/internal/contact/domain"
)

// snapshotVersion is the current snapshot format version written by Marshal.
const snapshotVersion = 1

type snapshot struct {
	Version  int               `json:"version"`
	Contacts []contactSnapshot `json:"contacts"`
}

type contactSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Marshal encodes book as a versioned JSON snapshot. Contacts keep book order.
func Marshal(book *domain.AddressBook) ([]byte, error) {
	s := snapshot{Version: snapshotVersion, Contacts: make([]contactSnapshot, 0, book.Len())}
	for _, r := range book.Records() {
		s.Contacts = append(s.Contacts, recordToSnapshot(r))
	}
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes a snapshot produced by Marshal. Phones and birthdays are re-validated,
// so a hand-edited file with a malformed value fails with an error wrapping domain.ErrValidation.
func Unmarshal(data []byte) (*domain.AddressBook, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	book := domain.NewAddressBook()
	for i, c := range s.Contacts {
		r, err := snapshotToRecord(c)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
		book.AddRecord(r)
	}
	return book, nil
}

func recordToSnapshot(r *domain.Record) contactSnapshot {
	c := contactSnapshot{Name: r.Name(), Phones: make([]string, 0, len(r.Phones()))}
	for _, p := range r.Phones() {
		c.Phones = append(c.Phones, p.String())
	}
	if bd := r.Birthday(); bd != nil {
		c.Birthday = bd.String()
	}
	return c
}

func snapshotToRecord(c contactSnapshot) (*domain.Record, error) {
	r, err := domain.NewRecord(c.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if err := r.AddBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}
