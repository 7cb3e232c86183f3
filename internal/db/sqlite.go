package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/glebarez/go-sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// the embedded engine allows a single writer; one connection keeps
	// statement ordering predictable
	sqlDB.SetMaxOpenConns(1)

	s := &SQLiteStore{db: sqlDB}
	if err := s.initSchema(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlite init: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Engine() string { return "sqlite" }

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, translatePlaceholders(query), args...)
	if err != nil {
		return nil, wrapSQLiteErr(err)
	}
	defer rows.Close()
	return scanRows(rows)
}

func (s *SQLiteStore) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := s.db.ExecContext(ctx, translatePlaceholders(query), args...)
	if err != nil {
		return Result{}, wrapSQLiteErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	return Result{LastInsertID: id, RowsAffected: affected}, nil
}

// initSchema creates the tables if absent and seeds the language reference
// set. Safe to run on every startup: the seed inserts are keyed on the
// unique code column and ignored when the row already exists.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return err
	}

	for _, stmt := range sqliteSchema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	for _, lang := range SeedLanguages {
		_, err := s.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO languages (name, code, description) VALUES (?, ?, ?)",
			lang.Name, lang.Code, lang.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapSQLiteErr(err error) error {
	// the driver has no typed constraint error, match on the engine message
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	}
	return err
}
