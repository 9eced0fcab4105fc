// Package sqlite implements the durable note Store on top of SQLite.
// One Store owns one database file; all writes serialize behind its
// mutex, and every committed mutation republishes the affected owners'
// ordered snapshots through the feed hub.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store is the SQLite-backed note store. The zero value is not usable;
// construct with New and call Open before any operation.
type Store struct {
	mu          sync.RWMutex
	open        bool
	config      types.Config
	db          *sql.DB
	schemaReset bool
	feed        *feedHub
}

// New creates an unopened Store. Call Open with a Config to initialize.
func New() *Store {
	return &Store{
		feed: newFeedHub(),
	}
}

// Open creates the data directory if needed, opens the database file,
// and brings the schema to the current version (migrating or, when no
// migration path exists, destructively resetting; see SchemaWasReset).
//
// Open happens at most once per handle: concurrent early callers
// serialize behind the mutex, the first one wins, and the rest receive
// ErrAlreadyOpen and reuse the already-open handle.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, config.File())
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// modernc.org/sqlite allows a single writer; one connection keeps
	// the serialization in the driver aligned with the mutex above.
	db.SetMaxOpenConns(1)

	reset, err := ensureSchema(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("ensure schema: %w", err)
	}

	s.db = db
	s.config = config
	s.schemaReset = reset
	s.open = true

	return nil
}

// Close releases the database and closes every active subscription.
// After Close, all operations return ErrStoreClosed. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil // idempotent
	}

	s.feed.closeAll()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.db = nil
	s.open = false

	return nil
}

// SchemaWasReset reports whether the last Open discarded existing data
// because the on-disk schema version had no migration path to the
// current version. The reset itself is the intended fallback; the flag
// exists so callers can surface the data loss instead of swallowing it.
func (s *Store) SchemaWasReset() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schemaReset
}
