package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kofiasare/ghanalingo/internal/config"
)

// ErrUniqueViolation wraps engine-specific duplicate-key failures so callers
// can map them to a conflict response without knowing which engine is active.
var ErrUniqueViolation = errors.New("unique constraint violation")

// Row is a single result row keyed by column name.
type Row map[string]any

type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Store is the uniform contract over both backing engines. Queries are
// written with $1..$N markers; the sqlite store translates them before
// execution. Parameters bind positionally in marker order.
type Store interface {
	Query(ctx context.Context, query string, args ...any) ([]Row, error)
	Execute(ctx context.Context, query string, args ...any) (Result, error)
	Engine() string
	Close() error
}

// Open resolves the backing engine once at startup. DB_ENGINE selects it
// explicitly; "auto" keeps the historical behavior of preferring postgres
// and falling back to the embedded engine, failing only if neither opens.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.DBEngine {
	case "postgres":
		return OpenPostgres(ctx, PostgresDSN(cfg))
	case "sqlite":
		return OpenSQLite(ctx, cfg.SQLitePath)
	case "auto", "":
		pg, pgErr := OpenPostgres(ctx, PostgresDSN(cfg))
		if pgErr == nil {
			return pg, nil
		}
		lite, liteErr := OpenSQLite(ctx, cfg.SQLitePath)
		if liteErr == nil {
			return lite, nil
		}
		return nil, fmt.Errorf("no database engine available: postgres: %v; sqlite: %v", pgErr, liteErr)
	default:
		return nil, fmt.Errorf("unknown DB_ENGINE %q", cfg.DBEngine)
	}
}

func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			v := vals[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func isInsert(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT")
}
