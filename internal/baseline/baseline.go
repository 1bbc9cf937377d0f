package baseline

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/scene"
)

// Snapshot is a part's transform as authored. It is written once and never overwritten, so
// every resize is computed as baseline × params and repeated resizes cannot drift.
type Snapshot struct {
	Scale    r3.Vec
	Position r3.Vec
}

// Store holds one Snapshot per part for the lifetime of the loaded model. There is no reset:
// a new model gets a new Store.
type Store struct {
	snaps map[uuid.UUID]Snapshot
}

// New returns an empty store.
func New() *Store {
	return &Store{snaps: make(map[uuid.UUID]Snapshot)}
}

// CaptureIfAbsent records p's current transform unless a snapshot already exists, and returns
// the stored snapshot either way. Safe to call on every resize.
func (s *Store) CaptureIfAbsent(p *scene.Part) Snapshot {
	if snap, ok := s.snaps[p.ID]; ok {
		return snap
	}
	snap := Snapshot{Scale: p.Scale, Position: p.Position}
	s.snaps[p.ID] = snap
	return snap
}

// Get returns the snapshot of p, if one was captured.
func (s *Store) Get(p *scene.Part) (Snapshot, bool) {
	snap, ok := s.snaps[p.ID]
	return snap, ok
}

// Restore writes p's baseline back onto the part. It reports false when p has no baseline.
func (s *Store) Restore(p *scene.Part) bool {
	snap, ok := s.snaps[p.ID]
	if !ok {
		return false
	}
	p.Scale = snap.Scale
	p.Position = snap.Position
	return true
}

// Forget drops the snapshot of a part that left the model (a removed preset part or a
// retired clone). It does not expose a way to overwrite a live part's baseline.
func (s *Store) Forget(p *scene.Part) {
	delete(s.snaps, p.ID)
}

// Len returns the number of captured snapshots.
func (s *Store) Len() int {
	return len(s.snaps)
}
