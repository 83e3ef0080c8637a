package types

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// TypeList is the canonical member list of a union or intersection:
// sorted ascending by TypeId, free of duplicates, and sized exactly.
// Two TypeLists are equal iff their member sets are equal, which makes
// the list usable as a structural cache key for compound types whose
// mathematical identity is order- and multiplicity-independent.
//
// The sort order is TypeId numeric order. It carries no semantic
// meaning; it only exists so that equal sets compare and hash equal.
// Never mutated after construction; storage belongs to the Arena.
type TypeList struct {
	ids []TypeId
}

var _ set.Hasher[uint64] = TypeList{}

func newTypeList(arena *Arena, members []TypeId) TypeList {
	arena.scratch = append(arena.scratch[:0], members...)
	return canonicalise(arena)
}

func newTypeListFromSeq(arena *Arena, members iter.Seq[TypeId]) TypeList {
	arena.scratch = arena.scratch[:0]
	for id := range members {
		arena.scratch = append(arena.scratch, id)
	}
	return canonicalise(arena)
}

// canonicalise sorts and dedups the arena scratch buffer, then copies
// it into exact-size arena storage.
func canonicalise(arena *Arena) TypeList {
	slices.Sort(arena.scratch)
	canonical := slices.Compact(arena.scratch)
	out := arena.allocIDs(len(canonical))
	copy(out, canonical)
	return TypeList{ids: out}
}

// Members is a read-only view in canonical sort order, not input
// order. Callers must not mutate it or rely on original ordering.
func (l TypeList) Members() []TypeId {
	return l.ids
}

func (l TypeList) Len() int {
	return len(l.ids)
}

func (l TypeList) All() iter.Seq[TypeId] {
	return func(yield func(TypeId) bool) {
		for _, id := range l.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Equal is element-wise over the canonical form, so it holds exactly
// when the original member sets were equal.
func (l TypeList) Equal(other TypeList) bool {
	return slices.Equal(l.ids, other.ids)
}

func (l TypeList) Hash() uint64 {
	const prime1 uint64 = 9973
	h := fnv.New64a()
	arr := make([]byte, 0, len(l.ids)*4)
	for _, id := range l.ids {
		arr = binary.LittleEndian.AppendUint32(arr, uint32(id))
	}
	_, _ = h.Write(arr)
	return prime1 ^ h.Sum64()
}

func (l TypeList) String() string {
	sb := strings.Builder{}
	for i, id := range l.ids {
		if i > 0 {
			sb.WriteString("|")
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}
