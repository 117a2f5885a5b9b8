// Package nounstore persists extracted nouns in SQLite so the extension
// build can query them without re-reading the dump.
package nounstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hanzitab/hanzitab/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store is a SQLite-backed noun table.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrationFS, "migrations"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutNouns inserts nouns for lang in one transaction. Nouns already stored
// keep their original import time. It returns the number of new rows.
func (s *Store) PutNouns(ctx context.Context, lang string, nouns []string, now time.Time) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, errors.New("storage is not configured")
	}
	if strings.TrimSpace(lang) == "" {
		return 0, errors.New("language is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO nouns (language, written_rep, imported_at) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	stamp := now.UTC().UnixMilli()
	for _, noun := range nouns {
		res, err := stmt.ExecContext(ctx, lang, noun, stamp)
		if err != nil {
			return 0, fmt.Errorf("insert noun %q: %w", noun, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

// ListNouns returns the stored nouns for lang in code point order.
func (s *Store) ListNouns(ctx context.Context, lang string) ([]string, error) {
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT written_rep FROM nouns WHERE language = ? ORDER BY written_rep", lang)
	if err != nil {
		return nil, fmt.Errorf("query nouns: %w", err)
	}
	defer rows.Close()

	var nouns []string
	for rows.Next() {
		var noun string
		if err := rows.Scan(&noun); err != nil {
			return nil, fmt.Errorf("scan noun: %w", err)
		}
		nouns = append(nouns, noun)
	}
	return nouns, rows.Err()
}
