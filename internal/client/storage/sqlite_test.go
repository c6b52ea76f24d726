package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:storage_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM session`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	_, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.False(t, ok, "missing key reports absent, not error")

	require.NoError(t, s.Set(ctx, KeyUser, `{"user_id":7}`))
	v, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"user_id":7}`, v)

	// upsert semantics
	require.NoError(t, s.Set(ctx, KeyUser, `{"user_id":8}`))
	v, _, err = s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Equal(t, `{"user_id":8}`, v)
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, KeyUser, "u"))
	require.NoError(t, s.Set(ctx, KeyToken, "t"))

	require.NoError(t, s.Delete(ctx, KeyToken))

	_, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "u", v)
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, KeyUser, "u"))
	require.NoError(t, s.Set(ctx, KeyToken, "t"))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyUser, KeyToken} {
		_, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, "file:storage_migrate?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, KeyToken, "abc"))
	v, ok, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", v)
}
