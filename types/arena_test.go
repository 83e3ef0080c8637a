package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocIsFenced(t *testing.T) {
	arena := NewArena()
	first := arena.allocIDs(3)
	second := arena.allocIDs(3)

	copy(first, []TypeId{1, 2, 3})
	copy(second, []TypeId{4, 5, 6})

	// appending past an allocation must reallocate, not spill into the
	// neighbour
	grown := append(first, 99)
	assert.Equal(t, []TypeId{4, 5, 6}, second)
	assert.Equal(t, []TypeId{1, 2, 3, 99}, grown)
}

func TestArenaGrowsPastChunkSize(t *testing.T) {
	arena := NewArena()
	small := arena.allocIDs(8)
	big := arena.allocIDs(arenaMinChunk * 3)

	require.Len(t, big, arenaMinChunk*3)
	copy(small, []TypeId{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, TypeId(8), small[7], "older allocations survive chunk growth")
}

func TestArenaInternString(t *testing.T) {
	arena := NewArena()

	source := []byte("hello")
	owned := arena.InternString(string(source))
	again := arena.InternString("hello")

	assert.Equal(t, "hello", owned)
	// same owned copy for equal inputs
	assert.Equal(t, owned, again)
}
