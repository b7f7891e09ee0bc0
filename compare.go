// compare.go -- set relations, equality and ordering of bitvectors
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvector

// Contains returns true if every bit set in 'x' is also set in b, i.e., x
// is a (non-strict) subset of b. Sizes don't matter; only set bits do.
func (b *BitVector) Contains(x *BitVector) bool {
	n := min(len(b.v), len(x.v))
	for i := 0; i < n; i++ {
		if b.v[i]&x.v[i] != x.v[i] {
			return false
		}
	}

	for _, w := range x.v[n:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// StrictlyContains returns true if b contains x and b has at least one
// set bit that x does not. A larger size alone doesn't make b a strict
// superset.
func (b *BitVector) StrictlyContains(x *BitVector) bool {
	if !b.Contains(x) {
		return false
	}

	for i, w := range b.v {
		if w&^word(x.v, i) != 0 {
			return true
		}
	}
	return false
}

// Intersects returns true if b and x have at least one set bit in common
func (b *BitVector) Intersects(x *BitVector) bool {
	n := min(len(b.v), len(x.v))
	for i := 0; i < n; i++ {
		if b.v[i]&x.v[i] != 0 {
			return true
		}
	}
	return false
}

// Equal returns true if b and x have the same size and the same bits set.
func (b *BitVector) Equal(x *BitVector) bool {
	if b.size != x.size || len(b.v) != len(x.v) {
		return false
	}

	for i, w := range b.v {
		if w != x.v[i] {
			return false
		}
	}
	return true
}

// EqualIgnoreSize returns true if b and x have the same bits set,
// regardless of their sizes.
func (b *BitVector) EqualIgnoreSize(x *BitVector) bool {
	return b.CompareIgnoreSize(x) == 0
}

// Compare orders bitvectors by size first; vectors of equal size are
// ordered as unsigned integers. It returns -1, 0 or +1 and Compare(x) == 0
// iff Equal(x).
func (b *BitVector) Compare(x *BitVector) int {
	switch {
	case b.size < x.size:
		return -1
	case b.size > x.size:
		return 1
	}

	return compareWords(b.v, x.v)
}

// CompareIgnoreSize orders bitvectors as arbitrary width unsigned integers
// with bit 0 as the least significant bit. It returns -1, 0 or +1 and
// CompareIgnoreSize(x) == 0 iff EqualIgnoreSize(x).
func (b *BitVector) CompareIgnoreSize(x *BitVector) int {
	return compareWords(b.v, x.v)
}

// compare two word arrays as unsigned integers, most significant word
// first; missing high words are zero.
func compareWords(a, b []uint64) int {
	n := min(len(a), len(b))

	for _, w := range a[n:] {
		if w != 0 {
			return 1
		}
	}
	for _, w := range b[n:] {
		if w != 0 {
			return -1
		}
	}

	for i := n - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
