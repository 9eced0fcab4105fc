package types

import "errors"

// Store provides durable CRUD over Notes plus a live per-owner query feed.
// Callers open the store once, operate on it, and close it when done.
type Store interface {
	// Insert persists a note. When n.ID is NewNoteID a fresh unique ID
	// is assigned; otherwise any existing record with that ID is
	// replaced (insert-or-replace, safe under idempotent retry).
	// Returns the effective ID.
	Insert(n *Note) (int64, error)

	// Update rewrites the mutable fields (Title, Description, Emoji,
	// ImagePath) of the record with n.ID. CreationTime and OwnerID are
	// never changed. Updating an ID that does not exist is a silent
	// no-op; this is a documented contract, not an error.
	Update(n *Note) error

	// Delete removes the record matching both n.ID and n.OwnerID.
	// A mismatched owner is a no-op, so one user can never delete
	// another user's record even with a guessed ID.
	Delete(n *Note) error

	// DeleteByID is Delete without constructing a Note.
	DeleteByID(id int64, ownerID string) error

	// DeleteAllForOwner removes every record belonging to ownerID.
	DeleteAllForOwner(ownerID string) error

	// GetByID returns the record matching both id and ownerID, or
	// ErrNotFound when it is absent or owned by a different user.
	GetByID(id int64, ownerID string) (*Note, error)

	// ListByOwner returns the owner's records ordered by CreationTime
	// descending.
	ListByOwner(ownerID string) ([]*Note, error)

	// Subscribe registers a live view over ListByOwner. The current
	// matching set is delivered immediately; every committed mutation
	// that could affect the owner's set triggers re-delivery of the
	// full recomputed list.
	Subscribe(ownerID string) (Subscription, error)

	// Close releases the underlying database and closes every active
	// subscription. Idempotent.
	Close() error
}

// Subscription is a live, owner-scoped view over a Store. Each emission
// is a whole recomputed snapshot, never a diff. A subscriber that falls
// behind sees the latest snapshot only; intermediate ones may be dropped.
type Subscription interface {
	// Notes returns the emission channel. It is closed when the
	// subscription or the owning Store is closed.
	Notes() <-chan []*Note

	// Close unregisters the subscription and closes the channel.
	// Idempotent.
	Close()
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Operation errors.
var (
	ErrNotFound   = errors.New("note not found")
	ErrInvalidID  = errors.New("invalid note ID")
	ErrBlankTitle = errors.New("title must not be blank")
	ErrNoOwner    = errors.New("owner must not be empty")
)
