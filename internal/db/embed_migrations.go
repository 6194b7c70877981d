package db

import "embed"

// MigrationFS holds the contacts schema: the contacts table (name, birthday, listing position)
// and contact_phones (ordered numbers per contact). migrate.Run and migrate.EnsureSchema read it
// through golang-migrate's iofs source.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
