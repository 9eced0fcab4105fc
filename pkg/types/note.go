package types

// NewNoteID is the sentinel ID of a record that has not been persisted.
// Insert assigns a fresh ID when it sees this value.
const NewNoteID int64 = 0

// Note represents a single user-authored note.
//
// Identity for storage purposes is ID; two Notes compare equal for test
// purposes when all fields match. Every read and mutation of a persisted
// Note is additionally scoped by OwnerID, so IDs are never meaningful
// across owners even though they are unique globally.
type Note struct {
	// ID is unique across all owners. Assigned by the Store on first
	// insert when the caller supplies NewNoteID.
	ID int64 `json:"id"`

	// OwnerID identifies the owning user. The core never sources this
	// value itself; it is supplied by the identity collaborator on every
	// operation.
	OwnerID string `json:"owner_id"`

	// Title is required to be non-blank at the service boundary. The
	// Store itself does not enforce this.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Emoji is an externally defined icon identifier, opaque to the Store.
	Emoji int `json:"emoji"`

	// ImagePath is an opaque filesystem reference owned by the image
	// storage collaborator. Empty means no image. Never validated.
	ImagePath string `json:"image_path,omitempty"`

	// CreationTime is an epoch-millisecond timestamp set once at
	// creation. Update never changes it. It is the sole ordering key
	// for listing (newest first).
	CreationTime int64 `json:"creation_time"`
}

// IsNew reports whether the note has not been assigned a persistent ID.
func (n *Note) IsNew() bool {
	return n.ID == NewNoteID
}
