package types

import (
	"errors"
	"strings"
)

// DefaultDatabaseFile is the database file name used when Config leaves
// DatabaseFile empty.
const DefaultDatabaseFile = "jotbook.db"

// Config holds the parameters for Store.Open.
type Config struct {
	// DataDir is the directory holding the database file. Created if it
	// does not exist. Empty means the current directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DatabaseFile is the file name of the SQLite database inside
	// DataDir. Empty means DefaultDatabaseFile. Must be a bare file
	// name, not a path.
	DatabaseFile string `json:"database_file" yaml:"database_file"`
}

// Config validation errors.
var (
	ErrDatabaseFileIsPath = errors.New("database file must be a bare file name")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if strings.ContainsAny(c.DatabaseFile, `/\`) {
		return ErrDatabaseFileIsPath
	}
	return nil
}

// File returns the effective database file name.
func (c Config) File() string {
	if c.DatabaseFile == "" {
		return DefaultDatabaseFile
	}
	return c.DatabaseFile
}
