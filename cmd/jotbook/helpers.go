// Shared helpers for jotbook CLI commands.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mesh-intelligence/jotbook/internal/identity"
	"github.com/mesh-intelligence/jotbook/internal/images"
	"github.com/mesh-intelligence/jotbook/internal/notes"
	"github.com/mesh-intelligence/jotbook/internal/paths"
	"github.com/mesh-intelligence/jotbook/internal/sqlite"
	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// openStore resolves the data directory, creates the SQLite store, and
// opens it. The caller must defer store.Close(). When the open had to
// destructively reset an incompatible schema, the data loss is surfaced
// on stderr instead of being swallowed.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.New()
	if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if store.SchemaWasReset() {
		fmt.Fprintln(os.Stderr, "warning: note database schema was incompatible; existing notes were discarded")
	}

	return store, nil
}

// openService opens the store and wraps it in the note service.
// The returned closer must be deferred.
func openService() (*notes.Service, func() error, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return notes.New(store), store.Close, nil
}

// resolveOwner returns the owner identifier every operation is scoped
// to, following flag > config.yaml > $JOTBOOK_OWNER precedence.
func resolveOwner() (string, error) {
	provider := identity.Static{
		FlagOwner:   flagOwner,
		ConfigOwner: configOwner,
	}
	owner, err := provider.CurrentOwner()
	if err != nil {
		return "", fmt.Errorf("no owner configured: set --owner, config.yaml owner, or $%s", identity.EnvOwner)
	}
	return owner, nil
}

// imageDir returns the image storage collaborator rooted under the
// resolved data directory.
func imageDir() (*images.Dir, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return images.NewDir(paths.ImagesDir(dataDir))
}

// importImage copies the file at srcPath into managed image storage
// and returns the stored path for the note's image reference.
func importImage(srcPath string) (string, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	dir, err := imageDir()
	if err != nil {
		return "", err
	}
	return dir.Save(data)
}

// parseNoteID parses a positional note ID argument.
func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note ID %q", arg)
	}
	return id, nil
}

// formatCreated renders an epoch-millisecond creation time for table
// output.
func formatCreated(millis int64) string {
	return time.UnixMilli(millis).Local().Format("2006-01-02 15:04")
}
