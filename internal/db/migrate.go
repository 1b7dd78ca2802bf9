package db

import (
	"context"

	_ "embed"
)

//go:embed schema_sqlite.sql
var schemaSQLite string

//go:embed schema_postgres.sql
var schemaPostgres string

// migrate applies the conversations schema for the store's dialect. The
// statements are idempotent, so re-running against an existing database is
// safe.
func (s *Store) migrate(ctx context.Context) error {
	schema := schemaSQLite
	if s.dialect == dialectPostgres {
		schema = schemaPostgres
	}
	_, err := s.db.ExecContext(ctx, schema)
	return err
}
