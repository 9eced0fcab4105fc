// The feed hub fans full list snapshots out to per-owner subscribers.
// Delivery is latest-wins: each subscription buffers exactly one
// pending snapshot, and a newer one displaces it rather than blocking
// the writer.
package sqlite

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/jotbook/pkg/types"
)

// Compile-time interface check: subscription must implement
// types.Subscription.
var _ types.Subscription = (*subscription)(nil)

// feedHub tracks active subscriptions keyed by owner.
type feedHub struct {
	mu   sync.Mutex
	subs map[string]map[uuid.UUID]*subscription
}

func newFeedHub() *feedHub {
	return &feedHub{
		subs: make(map[string]map[uuid.UUID]*subscription),
	}
}

// subscription is one live owner-scoped view. Closing is idempotent and
// safe concurrently with publishes; the hub lock orders channel closes
// against sends.
type subscription struct {
	id      uuid.UUID
	ownerID string
	hub     *feedHub
	ch      chan []*types.Note
	closed  bool
}

// Notes returns the emission channel.
func (sub *subscription) Notes() <-chan []*types.Note {
	return sub.ch
}

// Close unregisters the subscription and closes its channel.
func (sub *subscription) Close() {
	sub.hub.mu.Lock()
	defer sub.hub.mu.Unlock()
	sub.closeLocked()
}

// closeLocked tears the subscription down. The caller must hold hub.mu.
func (sub *subscription) closeLocked() {
	if sub.closed {
		return
	}
	sub.closed = true

	owners := sub.hub.subs
	if set, ok := owners[sub.ownerID]; ok {
		delete(set, sub.id)
		if len(set) == 0 {
			delete(owners, sub.ownerID)
		}
	}
	close(sub.ch)
}

// Subscribe registers a live view over the owner's note list. The
// current ordered set is already buffered on the returned subscription,
// so the first receive yields it without waiting for a mutation.
func (s *Store) Subscribe(ownerID string) (types.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	snapshot, err := s.listLocked(ownerID)
	if err != nil {
		return nil, err
	}

	sub := &subscription{
		id:      uuid.New(),
		ownerID: ownerID,
		hub:     s.feed,
		ch:      make(chan []*types.Note, 1),
	}
	sub.ch <- snapshot

	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	set, ok := s.feed.subs[ownerID]
	if !ok {
		set = make(map[uuid.UUID]*subscription)
		s.feed.subs[ownerID] = set
	}
	set[sub.id] = sub

	return sub, nil
}

// publish delivers snapshot to every subscriber of ownerID, displacing
// any snapshot a slow subscriber has not taken yet.
func (h *feedHub) publish(ownerID string, snapshot []*types.Note) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[ownerID] {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- snapshot
	}
}

// closeAll tears down every subscription. Called from Store.Close.
func (h *feedHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, set := range h.subs {
		for _, sub := range set {
			sub.closeLocked()
		}
	}
	h.subs = make(map[string]map[uuid.UUID]*subscription)
}
