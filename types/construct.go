package types

import (
	"log/slog"

	set "github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/cottand/tycache/internal/log"
)

// Kind says which constructor minted a TypeId, for the ids this
// package has seen. Ids minted outside Ctx (class instances, primitives
// and so on) report KindOpaque.
type Kind uint8

const (
	KindOpaque Kind = iota
	KindUnion
	KindIntersection
	KindTuple
	KindString
	KindNumber
	KindBigInt
)

type typeInfo struct {
	kind    Kind
	members TypeList  // unions and intersections
	elems   TupleList // tuples
}

// Ctx holds the mutable state of one checking session: the id
// allocator, the cache and what is known about each minted compound
// type. It is threaded through the checker by pointer and owns its
// cache exclusively; nothing here is safe for concurrent use.
type Ctx struct {
	fresher *Fresher
	cache   *TypeCache
	info    map[TypeId]typeInfo
	logger  *slog.Logger
}

func NewCtx() *Ctx {
	return &Ctx{
		fresher: NewFresher(),
		cache:   NewTypeCache(NewArena()),
		info:    make(map[TypeId]typeInfo),
		logger:  log.DefaultLogger.With("section", "types.cache"),
	}
}

// Cache exposes the underlying TypeCache for callers that mint their
// own identities and follow the get-before-add protocol themselves.
func (ctx *Ctx) Cache() *TypeCache {
	return ctx.cache
}

// NewTypeID mints an identity for a type created outside this
// package's constructors, such as a class instance type.
func (ctx *Ctx) NewTypeID() TypeId {
	return ctx.fresher.Fresh()
}

func (ctx *Ctx) KindOf(id TypeId) Kind {
	return ctx.info[id].kind
}

// CompoundMembers reports the canonical member list of a union or
// intersection minted by this Ctx.
func (ctx *Ctx) CompoundMembers(id TypeId) (TypeList, bool) {
	info, ok := ctx.info[id]
	if !ok || (info.kind != KindUnion && info.kind != KindIntersection) {
		return TypeList{}, false
	}
	return info.members, true
}

// TupleElems reports the positional element list of a tuple minted by
// this Ctx.
func (ctx *Ctx) TupleElems(id TypeId) (TupleList, bool) {
	info, ok := ctx.info[id]
	if !ok || info.kind != KindTuple {
		return TupleList{}, false
	}
	return info.elems, true
}

// UnionType returns the identity of the union over members, reusing a
// cached one when an equivalent union exists. Members that are
// themselves unions are flattened into their own members first; when
// every member is a union, the result is additionally memoised in the
// union-of-unions table keyed by the constituent union ids, so the
// flattening work runs once per shape.
func (ctx *Ctx) UnionType(members []TypeId) TypeId {
	unionIDs := lo.Filter(members, func(id TypeId, _ int) bool {
		return ctx.KindOf(id) == KindUnion
	})
	if len(members) > 1 && len(unionIDs) == len(members) {
		key := ctx.cache.TypeList(unionIDs)
		if id, ok := ctx.cache.GetUnionOfUnions(key); ok {
			ctx.logger.Debug("union-of-unions hit", "id", id)
			return id
		}
		id := ctx.unionType(ctx.flattened(members))
		ctx.cache.AddUnionOfUnions(key, id)
		return id
	}
	if len(unionIDs) > 0 {
		return ctx.unionType(ctx.flattened(members))
	}
	return ctx.unionType(members)
}

// flattened expands members that are unions into their member lists.
// Stored unions are already flat, so one level is enough.
func (ctx *Ctx) flattened(members []TypeId) []TypeId {
	flat := make([]TypeId, 0, len(members))
	seen := set.New[TypeId](len(members))
	for _, id := range members {
		if info, ok := ctx.info[id]; ok && info.kind == KindUnion {
			if !seen.Insert(id) {
				continue
			}
			flat = append(flat, info.members.Members()...)
			continue
		}
		flat = append(flat, id)
	}
	return flat
}

func (ctx *Ctx) unionType(members []TypeId) TypeId {
	key := ctx.cache.TypeList(members)
	if key.Len() == 1 {
		// a union of one type is that type
		return key.Members()[0]
	}
	if id, ok := ctx.cache.GetUnion(key); ok {
		ctx.logger.Debug("union hit", "id", id, "members", key.Len())
		return id
	}
	id := ctx.fresher.Fresh()
	ctx.info[id] = typeInfo{kind: KindUnion, members: key}
	ctx.cache.AddUnion(key, id)
	ctx.logger.Debug("union interned", "id", id, "members", key.Len())
	return id
}

// IntersectionType returns the identity of the intersection over
// members. An intersection and a union over the same member set get
// distinct identities: the tables are separate.
func (ctx *Ctx) IntersectionType(members []TypeId) TypeId {
	key := ctx.cache.TypeList(members)
	if key.Len() == 1 {
		return key.Members()[0]
	}
	if id, ok := ctx.cache.GetIntersection(key); ok {
		return id
	}
	id := ctx.fresher.Fresh()
	ctx.info[id] = typeInfo{kind: KindIntersection, members: key}
	ctx.cache.AddIntersection(key, id)
	ctx.logger.Debug("intersection interned", "id", id, "members", key.Len())
	return id
}

// TupleType returns the identity of the tuple with the given elements,
// in order. Nothing collapses here: a 1-tuple is not its element, and
// repeated elements stay repeated.
func (ctx *Ctx) TupleType(elems []TypeId) TypeId {
	key := ctx.cache.TupleList(elems)
	if id, ok := ctx.cache.GetTuple(key); ok {
		return id
	}
	id := ctx.fresher.Fresh()
	ctx.info[id] = typeInfo{kind: KindTuple, elems: key}
	ctx.cache.AddTuple(key, id)
	return id
}

func (ctx *Ctx) StringLiteralType(value string) TypeId {
	if id, ok := ctx.cache.GetString(value); ok {
		return id
	}
	id := ctx.fresher.Fresh()
	ctx.info[id] = typeInfo{kind: KindString}
	ctx.cache.AddString(value, id)
	return id
}

func (ctx *Ctx) NumberLiteralType(value float64) TypeId {
	key := NumberOf(value)
	if id, ok := ctx.cache.GetNumber(key); ok {
		return id
	}
	id := ctx.fresher.Fresh()
	ctx.info[id] = typeInfo{kind: KindNumber}
	ctx.cache.AddNumber(key, id)
	return id
}

// BigIntLiteralType keys on the literal's raw text: "-42" and "42" are
// different keys, and so are "0x10" and "16".
func (ctx *Ctx) BigIntLiteralType(raw string) TypeId {
	if id, ok := ctx.cache.GetBigInt(raw); ok {
		return id
	}
	id := ctx.fresher.Fresh()
	ctx.info[id] = typeInfo{kind: KindBigInt}
	ctx.cache.AddBigInt(raw, id)
	return id
}
