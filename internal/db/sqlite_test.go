package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteSeedLanguages(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rows, err := store.Query(ctx, "SELECT name, code FROM languages ORDER BY id")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "tw", String(rows[0], "code"))
	assert.Equal(t, "ee", String(rows[1], "code"))
	assert.Equal(t, "gaa", String(rows[2], "code"))
}

func TestSQLiteSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// simulate a second startup against the same file
	require.NoError(t, store.initSchema(ctx))

	rows, err := store.Query(ctx, "SELECT count(*) AS n FROM languages")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), Int64(rows[0], "n"))
}

func TestSQLiteExecuteReturnsInsertID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	res, err := store.Execute(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)",
		"ama1234", "ama@x.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)
	require.NotZero(t, res.LastInsertID)

	rows, err := store.Query(ctx, "SELECT id, email FROM users WHERE id = $1", res.LastInsertID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ama@x.com", String(rows[0], "email"))
}

func TestSQLitePlaceholdersBindInOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Execute(ctx,
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES ($1, $2, $3, $4, $5)",
		"a", "b@x.com", "c", "d", "e")
	require.NoError(t, err)

	rows, err := store.Query(ctx,
		"SELECT username, email, password_hash, first_name, last_name FROM users WHERE username = $1 AND email = $2",
		"a", "b@x.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c", String(rows[0], "password_hash"))
	assert.Equal(t, "d", String(rows[0], "first_name"))
	assert.Equal(t, "e", String(rows[0], "last_name"))
}

func TestSQLiteUniqueViolation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	insert := "INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)"
	_, err := store.Execute(ctx, insert, "user1", "dup@x.com", "h")
	require.NoError(t, err)

	_, err = store.Execute(ctx, insert, "user2", "dup@x.com", "h")
	require.ErrorIs(t, err, ErrUniqueViolation)
}

func TestSQLiteQueryErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Query(ctx, "SELECT * FROM no_such_table")
	require.Error(t, err)
}
