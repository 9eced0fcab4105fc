// Schema DDL and version-tagged migrations for the notes database.
//
// The on-disk version lives in PRAGMA user_version. On open the stored
// version is compared to schemaVersion: defined steps are applied in
// order for known transitions, and any version without a path to the
// current one falls back to a destructive reset (drop and recreate,
// losing all data). The fallback favors availability over durability
// across incompatible schema changes and is deliberate; do not make it
// lossless.
package sqlite

import (
	"database/sql"
	"fmt"
)

// schemaVersion is the version the notes table is brought to on open.
const schemaVersion = 4

const createNotes = `CREATE TABLE notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    emoji INTEGER NOT NULL DEFAULT 0,
    image_path TEXT,
    creation_time INTEGER NOT NULL DEFAULT 0
);`

const createOwnerCreatedIndex = `CREATE INDEX idx_notes_owner_created ON notes(owner_id, creation_time);`

// migrations maps a from-version to the step that brings the schema to
// from-version + 1. A stored version whose chain to schemaVersion has a
// gap triggers the destructive reset instead.
var migrations = map[int]func(tx *sql.Tx) error{
	1: func(tx *sql.Tx) error {
		_, err := tx.Exec(`ALTER TABLE notes ADD COLUMN image_path TEXT`)
		return err
	},
	2: func(tx *sql.Tx) error {
		_, err := tx.Exec(`ALTER TABLE notes ADD COLUMN creation_time INTEGER NOT NULL DEFAULT 0`)
		return err
	},
	3: func(tx *sql.Tx) error {
		_, err := tx.Exec(createOwnerCreatedIndex)
		return err
	},
}

// ensureSchema brings db to schemaVersion. It returns reset=true when
// existing data was discarded because the stored version had no
// migration path to the current one.
func ensureSchema(db *sql.DB) (reset bool, err error) {
	var stored int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&stored); err != nil {
		return false, fmt.Errorf("read schema version: %w", err)
	}

	switch {
	case stored == schemaVersion:
		return false, nil

	case stored == 0:
		var hasNotes bool
		err := db.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'notes')`,
		).Scan(&hasNotes)
		if err != nil {
			return false, fmt.Errorf("inspect schema: %w", err)
		}
		if !hasNotes {
			// Fresh database.
			return false, createSchema(db)
		}
		// An unversioned notes table predates version tracking; there
		// is no defined path from it.
		return true, resetSchema(db)

	case stored > 0 && stored < schemaVersion:
		for v := stored; v < schemaVersion; v++ {
			if migrations[v] == nil {
				return true, resetSchema(db)
			}
		}
		return false, migrateSchema(db, stored)

	default:
		// Newer than this build understands.
		return true, resetSchema(db)
	}
}

// createSchema initializes a fresh database and stamps the version.
func createSchema(db *sql.DB) error {
	for _, ddl := range []string{createNotes, createOwnerCreatedIndex} {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return stampVersion(db)
}

// migrateSchema applies the steps from the stored version up to
// schemaVersion inside one transaction.
func migrateSchema(db *sql.DB, stored int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for v := stored; v < schemaVersion; v++ {
		if err := migrations[v](tx); err != nil {
			return fmt.Errorf("migrate %d to %d: %w", v, v+1, err)
		}
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return tx.Commit()
}

// resetSchema drops everything and recreates the current schema.
func resetSchema(db *sql.DB) error {
	if _, err := db.Exec(`DROP TABLE IF EXISTS notes`); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}
	return createSchema(db)
}

func stampVersion(db *sql.DB) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return nil
}
