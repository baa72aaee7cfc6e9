package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteReadOnlyDSN(t *testing.T) {
	tests := map[string]string{
		"rubric.db":                   "file:rubric.db?mode=ro",
		"file:rubric.db":              "file:rubric.db?mode=ro",
		"file:rubric.db?cache=shared": "file:rubric.db?cache=shared&mode=ro",
		"file:rubric.db?mode=rw":      "file:rubric.db?mode=rw",
		":memory:":                    ":memory:",
	}
	for in, want := range tests {
		assert.Equal(t, want, SQLiteReadOnlyDSN(in), in)
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("in-memory default", func(t *testing.T) {
		db, err := New(ctx)
		require.NoError(t, err)
		defer db.Close()

		var one int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT 1").Scan(&one))
		assert.Equal(t, 1, one)
	})

	t.Run("read-only file rejects writes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rubric.db")

		rw, err := New(ctx, WithDataSource(path))
		require.NoError(t, err)
		_, err = rw.ExecContext(ctx, "CREATE TABLE rubric_criteria (id INTEGER)")
		require.NoError(t, err)
		require.NoError(t, rw.Close())

		ro, err := New(ctx, WithDataSource(path), WithReadOnly())
		require.NoError(t, err)
		defer ro.Close()

		_, err = ro.ExecContext(ctx, "INSERT INTO rubric_criteria (id) VALUES (1)")
		assert.Error(t, err)
		var n int
		require.NoError(t, ro.QueryRowContext(ctx, "SELECT COUNT(*) FROM rubric_criteria").Scan(&n))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := New(ctx, WithDriver(""))
		assert.Error(t, err)
		_, err = New(ctx, WithDataSource(""))
		assert.Error(t, err)
	})

	t.Run("unknown driver gives up after retries", func(t *testing.T) {
		_, err := New(ctx, WithDriver("nope"), WithRetry(2, time.Millisecond))
		assert.ErrorContains(t, err, "after 2 attempts")
	})

	t.Run("missing read-only file", func(t *testing.T) {
		_, err := New(ctx, WithDataSource(filepath.Join(t.TempDir(), "absent.db")), WithReadOnly(), WithRetry(1, 0))
		assert.Error(t, err)
	})
}
