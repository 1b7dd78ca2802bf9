package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"medbridge/pkg"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "postgres"
)

// Store is the append-only conversation log. It wraps database/sql and runs
// against SQLite (the single-user default) or PostgreSQL, selected by the
// DSN. Records are never updated in place; the only removal is Clear.
type Store struct {
	db      *sql.DB
	dialect string
}

// Open connects to the database named by dsn and applies the schema. A dsn
// beginning with postgres:// or postgresql:// selects the Postgres driver;
// anything else is treated as a SQLite file path.
func Open(ctx context.Context, dsn string) (*Store, error) {
	dialect := dialectSQLite
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialect = dialectPostgres
	} else if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn + "?_busy_timeout=5000&_journal_mode=WAL"
	}

	sqldb, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: sqldb, dialect: dialect}
	if err := s.migrate(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append writes one record, assigning its id and timestamp, and returns the
// new id. The write is a single INSERT: it either lands whole or not at all.
func (s *Store) Append(ctx context.Context, role pkg.Role, content, translated, sourceLang, targetLang string, audio []byte) (int64, error) {
	timestamp := time.Now().Format(time.RFC3339)

	if s.dialect == dialectPostgres {
		var id int64
		err := s.db.QueryRowContext(ctx,
			`INSERT INTO conversations (role, content, translated_content, source_lang, target_lang, timestamp, audio)
             VALUES ($1, $2, $3, $4, $5, $6, $7)
             RETURNING id`,
			role, content, nullIfEmpty(translated), sourceLang, targetLang, timestamp, audio,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("insert conversation record: %w", err)
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (role, content, translated_content, source_lang, target_lang, timestamp, audio)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		role, content, nullIfEmpty(translated), sourceLang, targetLang, timestamp, audio,
	)
	if err != nil {
		return 0, fmt.Errorf("insert conversation record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}
	return id, nil
}

// ReadAll returns every record ordered by timestamp ascending (insertion
// order under the single-writer assumption). The result is never nil.
func (s *Store) ReadAll(ctx context.Context) ([]pkg.MessageRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, translated_content, source_lang, target_lang, timestamp, audio
         FROM conversations
         ORDER BY timestamp ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("read conversation records: %w", err)
	}
	defer rows.Close()

	records := make([]pkg.MessageRecord, 0)
	for rows.Next() {
		var (
			rec        pkg.MessageRecord
			translated sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Role, &rec.Content, &translated,
			&rec.SourceLang, &rec.TargetLang, &rec.Timestamp, &rec.Audio); err != nil {
			return nil, fmt.Errorf("scan conversation record: %w", err)
		}
		if translated.Valid {
			rec.TranslatedContent = translated.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversation records: %w", err)
	}
	return records, nil
}

// Clear removes every record in one statement, so readers observe either
// the full log or an empty one.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM conversations`); err != nil {
		return fmt.Errorf("clear conversation records: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
