package types

import "strings"

const arenaMinChunk = 1024

// Arena owns the backing storage for every TypeList, TupleList and
// interned literal key created during one checking session.
//
// There is deliberately no way to free an individual allocation:
// canonical keys must stay valid and stable for as long as the types
// they identify, so reclamation only happens when the whole Arena is
// dropped at session end.
type Arena struct {
	chunk []TypeId
	used  int

	// scratch is reused across TypeList builds so canonicalisation
	// does not allocate per call.
	scratch []TypeId

	interned map[string]string
}

func NewArena() *Arena {
	return &Arena{
		interned: make(map[string]string),
	}
}

// allocIDs hands out an exact-size slice of arena storage. The slice is
// capacity-fenced so appending to it can never clobber a neighbour.
func (a *Arena) allocIDs(n int) []TypeId {
	if n == 0 {
		return nil
	}
	if a.used+n > len(a.chunk) {
		a.chunk = make([]TypeId, max(arenaMinChunk, len(a.chunk)*2, n))
		a.used = 0
	}
	out := a.chunk[a.used : a.used+n : a.used+n]
	a.used += n
	return out
}

// InternString returns a session-owned copy of s, the same copy for
// equal inputs. Literal keys drawn from source text go through here so
// the cache never retains a reference into the original source buffer.
func (a *Arena) InternString(s string) string {
	if owned, ok := a.interned[s]; ok {
		return owned
	}
	owned := strings.Clone(s)
	a.interned[owned] = owned
	return owned
}
