package seed

import "github.com/google/uuid"

// Allocator hands out identifiers that never collide with a known set.
//
// The exclusion set is owned by the caller and mutated in place: every
// returned identifier is recorded before Allocate returns, so a tight
// allocation loop needs no external bookkeeping. Collisions with random
// UUIDs are vanishingly rare, but correctness does not rely on that.
type Allocator struct {
	existing map[string]struct{}
}

// NewAllocator wraps an exclusion set. A nil set means nothing is excluded.
func NewAllocator(existing map[string]struct{}) *Allocator {
	if existing == nil {
		existing = make(map[string]struct{})
	}
	return &Allocator{existing: existing}
}

// Allocate returns a fresh identifier and records it in the exclusion set.
func (a *Allocator) Allocate() string {
	for {
		id := uuid.NewString()
		if _, taken := a.existing[id]; !taken {
			a.existing[id] = struct{}{}
			return id
		}
	}
}
