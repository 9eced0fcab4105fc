// Schema versioning tests: fresh create, stepwise migration, and the
// destructive fallback for versions with no migration path. The
// fallback trades durability for availability on purpose; these tests
// pin that trade-off.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// seedLegacyDB creates a database file with the schema of an older
// version, stamps that version, and runs seed against it.
func seedLegacyDB(t *testing.T, dataDir string, version int, seed func(t *testing.T, db *sql.DB)) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(dataDir, types.DefaultDatabaseFile))
	require.NoError(t, err)
	defer db.Close()

	ddl := map[int]string{
		1: `CREATE TABLE notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			emoji INTEGER NOT NULL DEFAULT 0
		);`,
		2: `CREATE TABLE notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			emoji INTEGER NOT NULL DEFAULT 0,
			image_path TEXT
		);`,
		3: `CREATE TABLE notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			emoji INTEGER NOT NULL DEFAULT 0,
			image_path TEXT,
			creation_time INTEGER NOT NULL DEFAULT 0
		);`,
	}
	_, err = db.Exec(ddl[version])
	require.NoError(t, err)

	if seed != nil {
		seed(t, db)
	}

	_, err = db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version))
	require.NoError(t, err)
}

func TestFreshCreateStampsCurrentVersion(t *testing.T) {
	dataDir := t.TempDir()

	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s.Close() })

	assert.False(t, s.SchemaWasReset())

	var version int
	db, err := sql.Open("sqlite", filepath.Join(dataDir, types.DefaultDatabaseFile))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.QueryRow(`PRAGMA user_version`).Scan(&version))
	assert.Equal(t, schemaVersion, version)
}

func TestMigrateFromVersion2PreservesData(t *testing.T) {
	dataDir := t.TempDir()
	seedLegacyDB(t, dataDir, 2, func(t *testing.T, db *sql.DB) {
		_, err := db.Exec(
			`INSERT INTO notes (owner_id, title, description, emoji) VALUES (?, ?, ?, ?)`,
			"u1", "old note", "from v2", 5,
		)
		require.NoError(t, err)
	})

	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s.Close() })

	assert.False(t, s.SchemaWasReset(), "a defined migration chain must not reset")

	notes, err := s.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "old note", notes[0].Title)
	assert.Equal(t, int64(0), notes[0].CreationTime, "added column defaults to 0")
}

func TestMigrateFromVersion1PreservesData(t *testing.T) {
	dataDir := t.TempDir()
	seedLegacyDB(t, dataDir, 1, func(t *testing.T, db *sql.DB) {
		_, err := db.Exec(
			`INSERT INTO notes (owner_id, title) VALUES (?, ?)`,
			"u1", "ancient note",
		)
		require.NoError(t, err)
	})

	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s.Close() })

	assert.False(t, s.SchemaWasReset())

	got, err := s.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ancient note", got[0].Title)
	assert.Empty(t, got[0].ImagePath)
}

func TestNewerVersionTriggersDestructiveReset(t *testing.T) {
	dataDir := t.TempDir()
	seedLegacyDB(t, dataDir, 3, func(t *testing.T, db *sql.DB) {
		_, err := db.Exec(
			`INSERT INTO notes (owner_id, title, creation_time) VALUES (?, ?, ?)`,
			"u1", "doomed", 100,
		)
		require.NoError(t, err)
	})

	// Stamp a version this build does not understand.
	db, err := sql.Open("sqlite", filepath.Join(dataDir, types.DefaultDatabaseFile))
	require.NoError(t, err)
	_, err = db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion+3))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s.Close() })

	assert.True(t, s.SchemaWasReset(), "data loss must be surfaced, not swallowed")

	notes, err := s.ListByOwner("u1")
	require.NoError(t, err)
	assert.Empty(t, notes, "reset drops all existing records")

	// The store is fully usable after the reset.
	_, err = s.Insert(&types.Note{OwnerID: "u1", Title: "fresh start", CreationTime: 1})
	require.NoError(t, err)
}

func TestUnversionedTableTriggersDestructiveReset(t *testing.T) {
	dataDir := t.TempDir()

	// A notes table with user_version 0 predates version tracking;
	// there is no defined path from it.
	db, err := sql.Open("sqlite", filepath.Join(dataDir, types.DefaultDatabaseFile))
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (body) VALUES ('legacy')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := New()
	require.NoError(t, s.Open(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { s.Close() })

	assert.True(t, s.SchemaWasReset())

	notes, err := s.ListByOwner("u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
}
