package artifact

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentswarm/core"
)

// InMemoryStore is the per-request ArtifactStore implementation. It keeps
// all artifacts in a map guarded by an RWMutex plus an insertion-order
// index. A fresh store is constructed for every request, so the store never
// needs eviction or retention limits.
type InMemoryStore struct {
	mu    sync.RWMutex
	byKey map[storeKey]core.Artifact
	order []storeKey
}

type storeKey struct {
	role  core.Role
	round int
}

// NewInMemoryStore returns an empty in-memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byKey: make(map[storeKey]core.Artifact)}
}

// Put stores the artifact, failing with ErrDuplicate if the (role, round)
// key is already occupied.
func (s *InMemoryStore) Put(a core.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := storeKey{role: a.Role, round: a.Round}
	if _, exists := s.byKey[k]; exists {
		return fmt.Errorf("%w: %s round %d", ErrDuplicate, a.Role, a.Round)
	}

	s.byKey[k] = a
	s.order = append(s.order, k)

	return nil
}

// Get returns the artifact stored under the exact (role, round) key.
func (s *InMemoryStore) Get(role core.Role, round int) (core.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byKey[storeKey{role: role, round: round}]

	return a, ok
}

// Latest returns the usable (ok or degraded) artifact with the highest
// round number for the role.
func (s *InMemoryStore) Latest(role core.Role) (core.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best  core.Artifact
		found bool
	)

	for k, a := range s.byKey {
		if k.role != role || !a.Usable() {
			continue
		}
		if !found || a.Round > best.Round {
			best = a
			found = true
		}
	}

	return best, found
}

// List returns all artifacts in insertion order. The slice is a snapshot
// and safe for caller mutation.
func (s *InMemoryStore) List() []core.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Artifact, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}

	return out
}
