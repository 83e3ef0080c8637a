package types

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// TupleList is the cache key for tuple types. Unlike TypeList it
// preserves element order and duplicates: tuples are positional, so
// (A, B), (B, A) and (A, A) are three distinct keys and must never
// share an identity with each other or with (A).
type TupleList struct {
	ids []TypeId
}

var _ set.Hasher[uint64] = TupleList{}

func newTupleList(arena *Arena, elems []TypeId) TupleList {
	out := arena.allocIDs(len(elems))
	copy(out, elems)
	return TupleList{ids: out}
}

// Members is a read-only view in element order.
func (l TupleList) Members() []TypeId {
	return l.ids
}

func (l TupleList) Len() int {
	return len(l.ids)
}

func (l TupleList) Equal(other TupleList) bool {
	return slices.Equal(l.ids, other.ids)
}

func (l TupleList) Hash() uint64 {
	const prime1 uint64 = 433
	const prime2 uint64 = 9973

	hash := prime2
	for _, id := range l.ids {
		hash = hash*prime1 ^ uint64(id)
	}
	return hash
}

func (l TupleList) String() string {
	sb := strings.Builder{}
	sb.WriteString("(")
	for i, id := range l.ids {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	sb.WriteString(")")
	return sb.String()
}
