package types

// TypeId identifies one distinct type within a checking session.
// IDs are assigned densely from zero and are never reused; two
// semantically distinct types never share one.
//
// The cache only stores and looks up TypeIds, it never mints them.
// Minting is the checker's job, via Fresher.
type TypeId uint32

// Fresher keeps track of new type IDs
// it is mutable and not suitable for concurrent use
type Fresher struct {
	freshCount TypeId
}

func NewFresher() *Fresher {
	return &Fresher{}
}

// Fresh returns a TypeId that has never been handed out by this Fresher.
func (f *Fresher) Fresh() TypeId {
	defer func() {
		f.freshCount++
	}()
	return f.freshCount
}

// Count is the number of IDs handed out so far.
func (f *Fresher) Count() int {
	return int(f.freshCount)
}
