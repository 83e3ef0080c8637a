package types

import (
	"fmt"
	"hash/fnv"
	"iter"

	"github.com/benbjohnson/immutable"
)

// table is one category's mapping from canonical key to TypeId: a
// hash-bucketed map with an in-bucket equality scan, so two keys that
// collide on hash still get their own entries. Keying goes through an
// immutable.Hasher so all six categories share one implementation.
type table[K any] struct {
	hasher  immutable.Hasher[K]
	buckets map[uint32][]tableEntry[K]
	size    int
}

type tableEntry[K any] struct {
	key K
	id  TypeId
}

func newTable[K any](hasher immutable.Hasher[K]) table[K] {
	return table[K]{
		hasher:  hasher,
		buckets: make(map[uint32][]tableEntry[K]),
	}
}

// get is a pure lookup with no side effects.
func (t *table[K]) get(key K) (TypeId, bool) {
	for _, entry := range t.buckets[t.hasher.Hash(key)] {
		if t.hasher.Equal(entry.key, key) {
			return entry.id, true
		}
	}
	return 0, false
}

// add registers key -> id. The key must not be present already: a
// re-insertion means the checker created two identities for one
// canonical shape, and the session cannot continue with an
// inconsistent cache, so we panic in every build.
func (t *table[K]) add(key K, id TypeId) {
	hash := t.hasher.Hash(key)
	for _, entry := range t.buckets[hash] {
		if t.hasher.Equal(entry.key, key) {
			panic(fmt.Sprintf("types: key %v re-inserted into cache (already TypeId %d, now %d); check before adding", key, entry.id, id))
		}
	}
	t.buckets[hash] = append(t.buckets[hash], tableEntry[K]{key: key, id: id})
	t.size++
}

func (t *table[K]) len() int {
	return t.size
}

type typeListHasher struct{}

func (typeListHasher) Hash(l TypeList) uint32   { return uint32(l.Hash()) }
func (typeListHasher) Equal(a, b TypeList) bool { return a.Equal(b) }

type tupleListHasher struct{}

func (tupleListHasher) Hash(l TupleList) uint32   { return uint32(l.Hash()) }
func (tupleListHasher) Equal(a, b TupleList) bool { return a.Equal(b) }

type stringHasher struct{}

func (stringHasher) Hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
func (stringHasher) Equal(a, b string) bool { return a == b }

type numberHasher struct{}

func (numberHasher) Hash(n Number) uint32   { return uint32(n.Hash()) }
func (numberHasher) Equal(a, b Number) bool { return a == b }

var (
	_ immutable.Hasher[TypeList]  = typeListHasher{}
	_ immutable.Hasher[TupleList] = tupleListHasher{}
	_ immutable.Hasher[string]    = stringHasher{}
	_ immutable.Hasher[Number]    = numberHasher{}
)

// TypeCache stores already-created types so the checker can reuse an
// identity instead of re-creating it. Reuse matters twice over:
// determining a type can be expensive, and many checker fast paths
// only fire when two types share an ID.
//
// One table per category. Categories never share a table: a union and
// an intersection over the same member set have the same TypeList key
// but must resolve to different TypeIds.
//
// The protocol is get-before-add. The cache has no get-or-create,
// because minting the TypeId is the checker's job and may involve
// checker state this package knows nothing about: Get, and on a miss,
// create elsewhere then Add.
//
// A TypeCache owns its tables exclusively and serves one session on
// one goroutine; it is not safe for concurrent use.
type TypeCache struct {
	arena *Arena

	tuples         table[TupleList]
	unions         table[TypeList]
	unionOfUnions  table[TypeList]
	intersections  table[TypeList]
	stringLiterals table[string]
	numberLiterals table[Number]
	bigIntLiterals table[string]
}

func NewTypeCache(arena *Arena) *TypeCache {
	return &TypeCache{
		arena:          arena,
		tuples:         newTable[TupleList](tupleListHasher{}),
		unions:         newTable[TypeList](typeListHasher{}),
		unionOfUnions:  newTable[TypeList](typeListHasher{}),
		intersections:  newTable[TypeList](typeListHasher{}),
		stringLiterals: newTable[string](stringHasher{}),
		numberLiterals: newTable[Number](numberHasher{}),
		bigIntLiterals: newTable[string](stringHasher{}),
	}
}

// TypeList builds the canonical member list for members, backed by the
// cache's arena. Callers never construct one directly.
func (c *TypeCache) TypeList(members []TypeId) TypeList {
	return newTypeList(c.arena, members)
}

// TypeListFromSeq is TypeList for a lazy producer of members.
func (c *TypeCache) TypeListFromSeq(members iter.Seq[TypeId]) TypeList {
	return newTypeListFromSeq(c.arena, members)
}

// TupleList builds an order- and duplicate-preserving tuple key,
// backed by the cache's arena.
func (c *TypeCache) TupleList(elems []TypeId) TupleList {
	return newTupleList(c.arena, elems)
}

func (c *TypeCache) GetTuple(key TupleList) (TypeId, bool) { return c.tuples.get(key) }
func (c *TypeCache) AddTuple(key TupleList, id TypeId)     { c.tuples.add(key, id) }

func (c *TypeCache) GetUnion(key TypeList) (TypeId, bool) { return c.unions.get(key) }
func (c *TypeCache) AddUnion(key TypeList, id TypeId)     { c.unions.add(key, id) }

// Union-of-unions entries are keyed by the canonical list of the
// constituent union ids, not of the flattened members.
func (c *TypeCache) GetUnionOfUnions(key TypeList) (TypeId, bool) { return c.unionOfUnions.get(key) }
func (c *TypeCache) AddUnionOfUnions(key TypeList, id TypeId)     { c.unionOfUnions.add(key, id) }

func (c *TypeCache) GetIntersection(key TypeList) (TypeId, bool) { return c.intersections.get(key) }
func (c *TypeCache) AddIntersection(key TypeList, id TypeId)     { c.intersections.add(key, id) }

func (c *TypeCache) GetString(value string) (TypeId, bool) { return c.stringLiterals.get(value) }
func (c *TypeCache) AddString(value string, id TypeId) {
	c.stringLiterals.add(c.arena.InternString(value), id)
}

func (c *TypeCache) GetNumber(value Number) (TypeId, bool) { return c.numberLiterals.get(value) }
func (c *TypeCache) AddNumber(value Number, id TypeId)     { c.numberLiterals.add(value, id) }

// Big-integer literals key on the raw source text (sign and digits),
// not a normalised magnitude.
func (c *TypeCache) GetBigInt(raw string) (TypeId, bool) { return c.bigIntLiterals.get(raw) }
func (c *TypeCache) AddBigInt(raw string, id TypeId) {
	c.bigIntLiterals.add(c.arena.InternString(raw), id)
}

// Len is the total number of cached identities across all categories.
func (c *TypeCache) Len() int {
	return c.tuples.len() +
		c.unions.len() +
		c.unionOfUnions.len() +
		c.intersections.len() +
		c.stringLiterals.len() +
		c.numberLiterals.len() +
		c.bigIntLiterals.len()
}
