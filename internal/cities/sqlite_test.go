package cities

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestDB(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE cities (
		name TEXT NOT NULL, state TEXT NOT NULL, population INTEGER NOT NULL,
		lat REAL NOT NULL, lng REAL NOT NULL, aliases TEXT)`)
	require.NoError(t, err)
	for _, r := range rows {
		_, err = db.Exec(`INSERT INTO cities (name, state, population, lat, lng, aliases)
		                  VALUES (?,?,?,?,?,?)`, r...)
		require.NoError(t, err)
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := writeTestDB(t, [][]any{
		{"New York", "NY", 8336817, 40.7128, -74.0060, "nyc"},
		{"Boston", "MA", 675647, 42.3601, -71.0589, nil},
		{"Springfield", "IL", 114394, 39.7817, -89.6501, nil},
	})

	ds, err := LoadSQLite(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	res := ds.Resolve("nyc")
	require.NotNil(t, res.City)
	assert.Equal(t, "New York, NY", res.City.Display())
}

func TestLoadSQLiteRejectsBadRow(t *testing.T) {
	path := writeTestDB(t, [][]any{
		{"Boston", "ZZ", 675647, 42.3601, -71.0589, nil},
	})
	_, err := LoadSQLite(path)
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, db.Close())

	_, err = LoadSQLite(path)
	require.ErrorIs(t, err, ErrLoad)
}
