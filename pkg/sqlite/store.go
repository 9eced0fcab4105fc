// Package sqlite provides the public API for the SQLite note store.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/mesh-intelligence/jotbook/internal/sqlite"
	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// Store is the concrete SQLite store. Callers outside the module hold
// it through the types.Store interface; the concrete type is exposed
// for Open and SchemaWasReset, which are not part of the interface.
type Store = sqlite.Store

// NewStore creates a new SQLite note store. The store is not open;
// call Open with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Open(types.Config{DataDir: ".jotbook-db"})
//	defer store.Close()
func NewStore() *Store {
	return sqlite.New()
}

// Compile-time interface check: the concrete store must satisfy
// types.Store.
var _ types.Store = (*Store)(nil)
