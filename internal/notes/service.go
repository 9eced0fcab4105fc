// Package notes is the service façade over the note store. It enforces
// the preconditions the store does not (non-blank title, present owner)
// and otherwise delegates, so every caller goes through one validation
// seam. The service never sources the owner itself; the identity
// collaborator supplies it on every call.
package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// Service validates and delegates note operations to a Store.
type Service struct {
	store types.Store
	now   func() time.Time
}

// New creates a Service over store.
func New(store types.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Create validates the fields, stamps the creation time, and inserts a
// new note for owner. Returns the persisted note with its assigned ID.
func (s *Service) Create(ownerID, title, description string, emoji int, imagePath string) (*types.Note, error) {
	if err := validate(ownerID, title); err != nil {
		return nil, err
	}

	n := &types.Note{
		ID:           types.NewNoteID,
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		Emoji:        emoji,
		ImagePath:    imagePath,
		CreationTime: s.now().UnixMilli(),
	}
	if _, err := s.store.Insert(n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// Update validates the fields and rewrites the note's mutable fields.
// The note's owner is forced to ownerID before delegating, so a caller
// cannot smuggle a foreign owner through the record. An ID that does
// not exist is the store's documented no-op.
func (s *Service) Update(ownerID string, n *types.Note) error {
	if err := validate(ownerID, n.Title); err != nil {
		return err
	}

	n.OwnerID = ownerID
	if err := s.store.Update(n); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Get returns the owner's note with the given ID. ErrNotFound is a
// normal empty result, not a fault: it covers both absence and a
// record owned by someone else.
func (s *Service) Get(ownerID string, id int64) (*types.Note, error) {
	if ownerID == "" {
		return nil, types.ErrNoOwner
	}
	return s.store.GetByID(id, ownerID)
}

// List returns the owner's notes, newest first.
func (s *Service) List(ownerID string) ([]*types.Note, error) {
	if ownerID == "" {
		return nil, types.ErrNoOwner
	}
	return s.store.ListByOwner(ownerID)
}

// Watch subscribes to the owner's live note list.
func (s *Service) Watch(ownerID string) (types.Subscription, error) {
	if ownerID == "" {
		return nil, types.ErrNoOwner
	}
	return s.store.Subscribe(ownerID)
}

// Delete removes the owner's note with the given ID. A mismatched or
// absent ID is the store's documented no-op.
func (s *Service) Delete(ownerID string, id int64) error {
	if ownerID == "" {
		return types.ErrNoOwner
	}
	return s.store.DeleteByID(id, ownerID)
}

// Clear removes every note belonging to the owner.
func (s *Service) Clear(ownerID string) error {
	if ownerID == "" {
		return types.ErrNoOwner
	}
	return s.store.DeleteAllForOwner(ownerID)
}

// validate checks the service-boundary preconditions. Nothing is
// written when it fails.
func validate(ownerID, title string) error {
	if ownerID == "" {
		return types.ErrNoOwner
	}
	if strings.TrimSpace(title) == "" {
		return types.ErrBlankTitle
	}
	return nil
}
