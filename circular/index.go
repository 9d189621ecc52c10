// Package circular implements Index, the Value-modulo-(length·π)
// equivalence class circle-lang's global array is keyed by. It is
// grounded on §4.3 of the specification and on
// _examples/original_source/lib/number.cpp's RotateableIndex/Index
// friend-equality, reworked as a value type with an explicit Equal
// method rather than operator overloading.
package circular

import (
	"circlelang/bigint"
	"circlelang/number"
)

// Index represents the equivalence class {v + k·length·π : k ∈ ℤ}, used
// to key circle-lang's arrays. Its hash is precomputed at construction so
// repeated map lookups don't recompute it.
type Index struct {
	value  number.Value
	length int64
	hash   uint64
}

// New builds the Index for value within an array of the given length.
func New(value number.Value, length int64) Index {
	return Index{value: value, length: length, hash: value.Hash(length)}
}

// Hash returns the precomputed hash, used to bucket Index keys in a map
// with custom equality (see runtime.Array, which keys entries by this
// hash and falls back to Equal for collisions).
func (idx Index) Hash() uint64 { return idx.hash }

// Length returns the ring size this Index was built against.
func (idx Index) Length() int64 { return idx.length }

// Value returns the key scalar this Index was built from, for display
// purposes (the debugger's "g" dump — §4.9). Two Index values with
// different Value()s may still be Equal.
func (idx Index) Value() number.Value { return idx.value }

// Equal implements §4.3's equality: compute diff = a.num·b.den - b.num·a.den
// and den = a.den·b.den, strip diff's trailing zeros. Equal iff diff is
// empty, or diff[0] == 0, len(diff) == len(den)+1, and the ratio
// diff[i+1]/(den[i]·length) is the same integer for every i — i.e. the
// difference is a scalar integer multiple of length·π.
func (a Index) Equal(b Index) bool {
	if a.length != b.length {
		return false
	}
	diff := number.PolySub(
		number.PolyMul(a.value.Numerator(), b.value.Denominator()),
		number.PolyMul(b.value.Numerator(), a.value.Denominator()),
	)
	den := number.PolyMul(a.value.Denominator(), b.value.Denominator())
	diff = number.TrimTrailingZeros(diff)

	if len(diff) == 0 {
		return true
	}
	if !diff[0].IsZero() {
		return false
	}
	if len(diff) != len(den)+1 {
		return false
	}

	length := bigint.New(a.length)
	var k bigint.Int
	kSet := false
	for i := 0; i < len(den); i++ {
		denom := den[i].Mul(length)
		if denom.IsZero() {
			if !diff[i+1].IsZero() {
				return false
			}
			continue
		}
		q := diff[i+1].Quo(denom)
		r := diff[i+1].Rem(denom)
		if !r.IsZero() {
			return false
		}
		if !kSet {
			k, kSet = q, true
		} else if !k.Equal(q) {
			return false
		}
	}
	return true
}
