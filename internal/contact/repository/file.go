package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"contact-assistant/internal/contact/domain"
)

// FileRepository keeps the address book as a JSON snapshot in a single file.
type FileRepository struct {
	path string
}

// NewFileRepository returns a repository backed by the file at path. The file need not exist.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the snapshot file path.
func (r *FileRepository) Path() string { return r.path }

// Load reads the snapshot file. A missing file yields an empty address book.
func (r *FileRepository) Load(ctx context.Context) (*domain.AddressBook, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	book, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	return book, nil
}

// Save writes the snapshot to a temporary file in the same directory and renames it over the target.
func (r *FileRepository) Save(ctx context.Context, book *domain.AddressBook) error {
	data, err := Marshal(book)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
