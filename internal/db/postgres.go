package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return &PostgresStore{db: sqlDB}, nil
}

func (s *PostgresStore) Engine() string { return "postgres" }

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPostgresErr(err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Execute runs a write statement. The pq driver does not support
// LastInsertId, so inserts run through QueryRow with a RETURNING id clause
// appended when the caller did not write one.
func (s *PostgresStore) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	if isInsert(query) {
		q := query
		if !strings.Contains(strings.ToUpper(q), "RETURNING") {
			q = q + " RETURNING id"
		}
		var id int64
		if err := s.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
			return Result{}, wrapPostgresErr(err)
		}
		return Result{LastInsertID: id, RowsAffected: 1}, nil
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, wrapPostgresErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	return Result{RowsAffected: affected}, nil
}

func wrapPostgresErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	}
	return err
}
