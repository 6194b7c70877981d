package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contact-assistant/internal/contact/domain"
)

// PostgresRepository stores the address book in the contacts and contact_phones tables
// (see internal/db/migrations).
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a contact repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Load returns every contact ordered by its listing position. An empty table yields an empty book.
func (r *PostgresRepository) Load(ctx context.Context) (*domain.AddressBook, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, birthday FROM contacts ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var (
		ids     []uuid.UUID
		records = make(map[uuid.UUID]*domain.Record)
	)
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			birthday sql.NullTime
		)
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		rec, err := domain.NewRecord(name)
		if err != nil {
			return nil, err
		}
		if birthday.Valid {
			if err := rec.AddBirthday(birthday.Time.Format(domain.DateLayout)); err != nil {
				return nil, fmt.Errorf("contact %s: %w", name, err)
			}
		}
		ids = append(ids, id)
		records[id] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	if err := r.loadPhones(ctx, records); err != nil {
		return nil, err
	}

	book := domain.NewAddressBook()
	for _, id := range ids {
		book.AddRecord(records[id])
	}
	return book, nil
}

func (r *PostgresRepository) loadPhones(ctx context.Context, records map[uuid.UUID]*domain.Record) error {
	rows, err := r.db.QueryContext(ctx, `SELECT contact_id, number FROM contact_phones ORDER BY contact_id, position`)
	if err != nil {
		return fmt.Errorf("query phones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			contactID uuid.UUID
			number    string
		)
		if err := rows.Scan(&contactID, &number); err != nil {
			return fmt.Errorf("scan phone: %w", err)
		}
		rec, ok := records[contactID]
		if !ok {
			continue
		}
		if err := rec.AddPhone(number); err != nil {
			return fmt.Errorf("contact %s: %w", rec.Name(), err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate phones: %w", err)
	}
	return nil
}

// Save replaces the stored contacts with book in a single transaction. Existing contacts keep
// their row id; contacts missing from book are deleted along with their phones.
func (r *PostgresRepository) Save(ctx context.Context, book *domain.AddressBook) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	records := book.Records()
	keep := make([]string, 0, len(records))
	for pos, rec := range records {
		if err := saveRecord(ctx, tx, rec, pos); err != nil {
			return fmt.Errorf("save contact %s: %w", rec.Name(), err)
		}
		keep = append(keep, rec.Name())
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE NOT (name = ANY($1))`, keep); err != nil {
		return fmt.Errorf("delete removed contacts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func saveRecord(ctx context.Context, tx *sql.Tx, rec *domain.Record, pos int) error {
	var birthday sql.NullTime
	if bd := rec.Birthday(); bd != nil {
		birthday = sql.NullTime{Time: bd.Date(), Valid: true}
	}
	now := time.Now().UTC()

	var id uuid.UUID
	err := tx.QueryRowContext(ctx, `
		INSERT INTO contacts (id, name, birthday, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (name) DO UPDATE
		SET birthday = EXCLUDED.birthday, position = EXCLUDED.position, updated_at = EXCLUDED.updated_at
		RETURNING id`,
		uuid.New(), rec.Name(), birthday, pos, now,
	).Scan(&id)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM contact_phones WHERE contact_id = $1`, id); err != nil {
		return err
	}
	for i, p := range rec.Phones() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contact_phones (contact_id, position, number) VALUES ($1, $2, $3)`,
			id, i, p.String(),
		); err != nil {
			return err
		}
	}
	return nil
}
