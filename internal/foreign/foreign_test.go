package foreign

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morel-lang/morel/internal/types"
)

// seedDB creates a fresh SQLite file with one "people" table and returns its
// path, so Load (which opens its own connection) sees the same schema and
// rows a setup connection wrote — a file path is used rather than ":memory:"
// since each :memory: connection gets its own private database.
func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE people (name TEXT, age INTEGER, balance REAL, active BOOLEAN)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO people VALUES (?, ?, ?, ?), (?, ?, ?, ?)`,
		"alice", 30, 12.5, 1,
		"bob", 25, 0.0, 0,
	)
	require.NoError(t, err)

	return path
}

// Load turns each user table into one Entry: a monomorphic
// `{..} list`-typed binding holding every row.
func TestLoadBuildsOneEntryPerTable(t *testing.T) {
	path := seedDB(t)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "people", e.Name)
	assert.True(t, e.Scheme.Vars == nil || len(e.Scheme.Vars) == 0, "a table binding is never generalized")
}

// A row's fields are converted per-column to the nearest Morel base type by
// SQLite's declared-type affinity, and sorted by label like every other
// eval.Record this engine produces.
func TestLoadConvertsColumnsByAffinity(t *testing.T) {
	path := seedDB(t)

	entries, err := Load(path)
	require.NoError(t, err)

	rows := entries[0].Value.Inspect()
	assert.Contains(t, rows, `"alice"`)
	assert.Contains(t, rows, "30")
	assert.Contains(t, rows, "12.5")
}

// sqlTypeToMorel follows SQLite's own loose type-affinity rules: only the
// substring matters, not an exact declared-type match.
func TestSQLTypeToMorel(t *testing.T) {
	assert.Equal(t, types.Int, sqlTypeToMorel("INTEGER"))
	assert.Equal(t, types.Int, sqlTypeToMorel("BIGINT"))
	assert.Equal(t, types.Real, sqlTypeToMorel("REAL"))
	assert.Equal(t, types.Real, sqlTypeToMorel("DOUBLE"))
	assert.Equal(t, types.Bool, sqlTypeToMorel("BOOLEAN"))
	assert.Equal(t, types.String, sqlTypeToMorel("TEXT"))
	assert.Equal(t, types.String, sqlTypeToMorel(""))
}

// columnValue converts a NULL cell to its Morel type's zero value rather
// than failing the row.
func TestColumnValueNullBecomesZeroValue(t *testing.T) {
	null := sql.NullString{Valid: false, String: ""}

	assert.Equal(t, "0", columnValue(types.Int, null).Inspect())
	assert.Equal(t, "false", columnValue(types.Bool, null).Inspect())
	assert.Equal(t, `""`, columnValue(types.String, null).Inspect())
}

// Load on a database with no user tables returns an empty slice, not an
// error.
func TestLoadNoTablesReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	db.Close()

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
