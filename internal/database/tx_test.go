package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestWithTxCommits(t *testing.T) {
	db := openTestDB(t)
	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (name) VALUES ('a')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")
	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (name) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, db))
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	db := openTestDB(t)
	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(tx *sql.Tx) error {
			_, _ = tx.Exec(`INSERT INTO items (name) VALUES ('a')`)
			panic("kaboom")
		})
	})
	assert.Equal(t, 0, countItems(t, db))
}
