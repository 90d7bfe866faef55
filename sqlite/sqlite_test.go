package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagekit/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB returns an open in-memory database, closed when the test ends.
func MustOpenDB(tb testing.TB) *sqlite.DB {
	tb.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(tb, db.Open())
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates pages table on first open", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM pages").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("applies every migration", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)

		version, err := db.SchemaVersion(context.Background())
		require.NoError(t, err)
		require.Equal(t, 4, version)
	})

	t.Run("reopening does not rerun migrations", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		version, err := db.SchemaVersion(context.Background())
		require.NoError(t, err)
		require.Equal(t, 4, version)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		var journalMode string
		err = db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening keeps data", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		ctx := context.Background()

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(ctx, `INSERT INTO pages (id, title, status, meta, sections, created_at, updated_at)
			VALUES ('p1', 't', 'draft', '{}', '[]', 'x', 'x')`)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&count))
		require.Equal(t, 1, count)
	})
}
