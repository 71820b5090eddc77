package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_RecordsAllocatedIDs(t *testing.T) {
	existing := map[string]struct{}{
		"pre-existing-id": {},
	}
	alloc := NewAllocator(existing)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := alloc.Allocate()

		assert.NotEmpty(t, id)
		assert.NotEqual(t, "pre-existing-id", id)

		_, dup := seen[id]
		assert.False(t, dup, "allocator returned %s twice", id)
		seen[id] = struct{}{}

		// The caller's set is mutated in place.
		_, recorded := existing[id]
		assert.True(t, recorded)
	}

	assert.Len(t, existing, 1001)
}

func TestAllocator_NilSet(t *testing.T) {
	alloc := NewAllocator(nil)

	a := alloc.Allocate()
	b := alloc.Allocate()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
