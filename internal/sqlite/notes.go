// CRUD over the notes table. Every mutation runs under the write lock
// and, once committed, republishes the ordered snapshot of each owner
// whose set could have changed.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

const noteColumns = "id, owner_id, title, description, emoji, image_path, creation_time"

// Insert persists n. A NewNoteID sentinel gets a fresh auto-increment
// ID; an explicit ID replaces any existing record with that ID. The
// replace path is the idempotent-retry policy, not accidental
// overwrite: retrying a committed insert leaves exactly one record.
func (s *Store) Insert(n *types.Note) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0, types.ErrStoreClosed
	}
	if n.ID < 0 {
		return 0, types.ErrInvalidID
	}

	owners := map[string]struct{}{n.OwnerID: {}}

	var id int64
	if n.IsNew() {
		res, err := s.db.Exec(
			`INSERT INTO notes (owner_id, title, description, emoji, image_path, creation_time)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			n.OwnerID, n.Title, n.Description, n.Emoji, nullableString(n.ImagePath), n.CreationTime,
		)
		if err != nil {
			return 0, fmt.Errorf("insert note: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert note: %w", err)
		}
	} else {
		// A replace can move the row to a different owner; that
		// owner's feed must re-emit too.
		var prevOwner string
		err := s.db.QueryRow(`SELECT owner_id FROM notes WHERE id = ?`, n.ID).Scan(&prevOwner)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("insert note: %w", err)
		}
		if err == nil {
			owners[prevOwner] = struct{}{}
		}

		_, err = s.db.Exec(
			`INSERT OR REPLACE INTO notes (id, owner_id, title, description, emoji, image_path, creation_time)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.OwnerID, n.Title, n.Description, n.Emoji, nullableString(n.ImagePath), n.CreationTime,
		)
		if err != nil {
			return 0, fmt.Errorf("insert note: %w", err)
		}
		id = n.ID
	}

	n.ID = id
	s.notifyLocked(owners)
	return id, nil
}

// Update rewrites the mutable fields of the record with n.ID.
// CreationTime and OwnerID stay as stored. When no record with that ID
// exists, Update returns nil without creating anything; the silent
// no-op is a documented contract.
func (s *Store) Update(n *types.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	var owner string
	err := s.db.QueryRow(`SELECT owner_id FROM notes WHERE id = ?`, n.ID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("update note %d: %w", n.ID, err)
	}

	_, err = s.db.Exec(
		`UPDATE notes SET title = ?, description = ?, emoji = ?, image_path = ? WHERE id = ?`,
		n.Title, n.Description, n.Emoji, nullableString(n.ImagePath), n.ID,
	)
	if err != nil {
		return fmt.Errorf("update note %d: %w", n.ID, err)
	}

	s.notifyLocked(map[string]struct{}{owner: {}})
	return nil
}

// Delete removes the record matching both n.ID and n.OwnerID.
func (s *Store) Delete(n *types.Note) error {
	return s.DeleteByID(n.ID, n.OwnerID)
}

// DeleteByID removes the record matching both id and ownerID. A record
// owned by someone else is left untouched; the no-op protects against
// cross-user deletion with a guessed ID.
func (s *Store) DeleteByID(id int64, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if removed, _ := res.RowsAffected(); removed > 0 {
		s.notifyLocked(map[string]struct{}{ownerID: {}})
	}
	return nil
}

// DeleteAllForOwner removes every record belonging to ownerID.
func (s *Store) DeleteAllForOwner(ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	res, err := s.db.Exec(`DELETE FROM notes WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("delete notes for owner: %w", err)
	}
	if removed, _ := res.RowsAffected(); removed > 0 {
		s.notifyLocked(map[string]struct{}{ownerID: {}})
	}
	return nil
}

// GetByID returns the record matching both id and ownerID, or
// ErrNotFound when it is absent or owned by a different user. A record
// deleted while the lookup is in flight reads as ErrNotFound.
func (s *Store) GetByID(id int64, ownerID string) (*types.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	row := s.db.QueryRow(
		`SELECT `+noteColumns+` FROM notes WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	n, err := hydrateNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return n, nil
}

// ListByOwner returns the owner's records ordered by creation time
// descending. Ties break on ID descending so the order is stable.
func (s *Store) ListByOwner(ownerID string) ([]*types.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.listLocked(ownerID)
}

// listLocked runs the owner query. The caller must hold s.mu (read or
// write side).
func (s *Store) listLocked(ownerID string) ([]*types.Note, error) {
	rows, err := s.db.Query(
		`SELECT `+noteColumns+` FROM notes WHERE owner_id = ? ORDER BY creation_time DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*types.Note
	for rows.Next() {
		n, err := hydrateNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// notifyLocked recomputes and publishes the snapshot for each owner in
// the set. The caller must hold the write lock, so the snapshot is at
// least as new as the mutation that triggered it.
func (s *Store) notifyLocked(owners map[string]struct{}) {
	for owner := range owners {
		snapshot, err := s.listLocked(owner)
		if err != nil {
			// Subscribers keep their previous snapshot; the write
			// itself already committed.
			continue
		}
		s.feed.publish(owner, snapshot)
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateNote scans one notes row into a Note.
func hydrateNote(row rowScanner) (*types.Note, error) {
	var (
		n     types.Note
		image sql.NullString
	)
	err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Description, &n.Emoji, &image, &n.CreationTime)
	if err != nil {
		return nil, err
	}
	n.ImagePath = image.String
	return &n, nil
}

// nullableString maps the empty string to NULL so "no image" is stored
// as an absent value rather than an empty path.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
