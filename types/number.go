package types

import (
	"math"
	"strconv"
)

// Number is the cache key for number literal types. It compares by the
// exact bit representation of the float, not float equality: two
// occurrences of the same NaN pattern are one key, and positive and
// negative zero (distinct patterns) are two, neither of which ordinary
// == would give us.
type Number struct {
	bits uint64
}

func NumberOf(value float64) Number {
	return Number{bits: math.Float64bits(value)}
}

func (n Number) Value() float64 {
	return math.Float64frombits(n.bits)
}

func (n Number) Hash() uint64 {
	const prime1 uint64 = 104729
	return prime1 ^ n.bits
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value(), 'g', -1, 64)
}
