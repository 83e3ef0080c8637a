package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetAddConsistency(t *testing.T) {
	cache := NewTypeCache(NewArena())
	key := cache.TypeList([]TypeId{3, 5, 7})

	_, ok := cache.GetUnion(key)
	assert.False(t, ok, "fresh cache must miss")

	cache.AddUnion(key, 100)
	id, ok := cache.GetUnion(key)
	require.True(t, ok)
	assert.Equal(t, TypeId(100), id)

	assert.Panics(t, func() {
		cache.AddUnion(cache.TypeList([]TypeId{7, 5, 3}), 101)
	}, "re-inserting an existing canonical key is a checker bug")
}

func TestCacheHitsAcrossEquivalentInputs(t *testing.T) {
	cache := NewTypeCache(NewArena())
	cache.AddUnion(cache.TypeList([]TypeId{3, 5, 7}), 100)

	// reordered and with a duplicate: same canonical key
	id, ok := cache.GetUnion(cache.TypeList([]TypeId{5, 7, 3, 3}))
	require.True(t, ok)
	assert.Equal(t, TypeId(100), id)
}

func TestCacheCategoryIsolation(t *testing.T) {
	cache := NewTypeCache(NewArena())
	members := []TypeId{3, 5, 7}

	cache.AddUnion(cache.TypeList(members), 100)
	cache.AddIntersection(cache.TypeList(members), 200)

	union, ok := cache.GetUnion(cache.TypeList(members))
	require.True(t, ok)
	intersection, ok := cache.GetIntersection(cache.TypeList(members))
	require.True(t, ok)

	assert.Equal(t, TypeId(100), union)
	assert.Equal(t, TypeId(200), intersection)

	_, ok = cache.GetUnionOfUnions(cache.TypeList(members))
	assert.False(t, ok, "union-of-unions table is separate from unions")
}

func TestCacheTuplesArePositional(t *testing.T) {
	cache := NewTypeCache(NewArena())
	a, b := TypeId(3), TypeId(5)

	cache.AddTuple(cache.TupleList([]TypeId{a, b}), 100)
	cache.AddTuple(cache.TupleList([]TypeId{b, a}), 200)
	cache.AddTuple(cache.TupleList([]TypeId{a, a}), 300)
	cache.AddTuple(cache.TupleList([]TypeId{a}), 400)

	id, ok := cache.GetTuple(cache.TupleList([]TypeId{b, a}))
	require.True(t, ok)
	assert.Equal(t, TypeId(200), id)

	id, ok = cache.GetTuple(cache.TupleList([]TypeId{a, a}))
	require.True(t, ok)
	assert.Equal(t, TypeId(300), id)
}

func TestCacheNumberBitExactness(t *testing.T) {
	cache := NewTypeCache(NewArena())

	cache.AddNumber(NumberOf(math.NaN()), 1)
	id, ok := cache.GetNumber(NumberOf(math.NaN()))
	require.True(t, ok, "same NaN bit pattern must hit")
	assert.Equal(t, TypeId(1), id)

	negZero := math.Copysign(0, -1)
	cache.AddNumber(NumberOf(0), 2)
	cache.AddNumber(NumberOf(negZero), 3)

	id, ok = cache.GetNumber(NumberOf(0))
	require.True(t, ok)
	assert.Equal(t, TypeId(2), id)
	id, ok = cache.GetNumber(NumberOf(negZero))
	require.True(t, ok)
	assert.Equal(t, TypeId(3), id, "-0 and +0 have distinct bit patterns and must not collide")
}

func TestCacheLiteralTablesAreSeparate(t *testing.T) {
	cache := NewTypeCache(NewArena())

	cache.AddString("1", 10)
	cache.AddBigInt("1", 20)

	str, ok := cache.GetString("1")
	require.True(t, ok)
	big, ok := cache.GetBigInt("1")
	require.True(t, ok)
	assert.Equal(t, TypeId(10), str)
	assert.Equal(t, TypeId(20), big)

	// raw text keys: "-42" and "42" never meet
	cache.AddBigInt("-42", 30)
	_, ok = cache.GetBigInt("42")
	assert.False(t, ok)
}

func TestCacheLen(t *testing.T) {
	cache := NewTypeCache(NewArena())
	assert.Equal(t, 0, cache.Len())

	cache.AddString("a", 1)
	cache.AddNumber(NumberOf(1), 2)
	cache.AddUnion(cache.TypeList([]TypeId{1, 2}), 3)
	assert.Equal(t, 3, cache.Len())
}
