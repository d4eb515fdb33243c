package hologram

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PeerTable records the engagement state of remote users as received from
// the network. Safe for concurrent use.
type PeerTable struct {
	mu    sync.RWMutex
	peers map[uuid.UUID]Notification
}

// NewPeerTable creates an empty table.
func NewPeerTable() *PeerTable {
	return &PeerTable{peers: make(map[uuid.UUID]Notification)}
}

// Apply records n. Notifications older than the stored one for the same
// user are ignored. Disengaged users are removed.
func (t *PeerTable) Apply(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.peers[n.UserID]; ok && n.At.Before(prev.At) {
		return
	}
	if !n.Engaged {
		delete(t.peers, n.UserID)
		return
	}
	t.peers[n.UserID] = n
}

// Engaged reports whether id is engaged with a panel.
func (t *PeerTable) Engaged(id uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.peers[id]
	return ok
}

// Since returns when id became engaged.
func (t *PeerTable) Since(id uuid.UUID) (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.peers[id]
	return n.At, ok
}

// EngagedUsers returns every engaged user, in no particular order.
func (t *PeerTable) EngagedUsers() []uuid.UUID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(t.peers))
	for id := range t.peers {
		ids = append(ids, id)
	}
	return ids
}

// Remove forgets id, for example when the user disconnects.
func (t *PeerTable) Remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.peers, id)
}

// Len returns the number of engaged peers.
func (t *PeerTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.peers)
}

// Notify implements Notifier so a table can stand in for a network link
// in tests and single-process hosts.
func (t *PeerTable) Notify(_ context.Context, n Notification) error {
	t.Apply(n)
	return nil
}
