// scan.go -- population counts and bit scans
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvector

import (
	"math/bits"
)

// Cardinality returns the number of set bits
func (b *BitVector) Cardinality() int {
	var n int
	for _, w := range b.v {
		n += bits.OnesCount64(w)
	}
	return n
}

// CardinalityTo returns the number of set bits strictly below 'to'.
// 'to' must be in [0, Size()].
func (b *BitVector) CardinalityTo(to int) (int, error) {
	if to < 0 || to > b.size {
		return 0, errIndex(to, b.size+1)
	}

	var n int
	w := to / 64
	for _, z := range b.v[:w] {
		n += bits.OnesCount64(z)
	}

	if r := uint(to) % 64; r != 0 {
		n += bits.OnesCount64(b.v[w] & ((uint64(1) << r) - 1))
	}
	return n, nil
}

// HighBit returns the index of the most significant set bit or None if no
// bit is set.
func (b *BitVector) HighBit() int {
	for i := len(b.v) - 1; i >= 0; i-- {
		if w := b.v[i]; w != 0 {
			return i*64 + 63 - bits.LeadingZeros64(w)
		}
	}
	return None
}

// IsEmpty returns true if no bit is set
func (b *BitVector) IsEmpty() bool {
	for _, w := range b.v {
		if w != 0 {
			return false
		}
	}
	return true
}

// NextSetBit returns the index of the first set bit at or after 'from'.
// It returns None if there is no such bit; an out of range 'from' is not
// an error and also yields None.
func (b *BitVector) NextSetBit(from int) int {
	if from < 0 || from >= b.size {
		return None
	}

	i := from / 64
	w := b.v[i] & (^uint64(0) << (uint(from) % 64))
	for {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
		if i++; i >= len(b.v) {
			return None
		}
		w = b.v[i]
	}
}

// NextClearBit returns the index of the first clear bit at or after 'from'
// and below Size(). Like NextSetBit it returns None rather than an error
// for an out of range 'from'.
func (b *BitVector) NextClearBit(from int) int {
	if from < 0 || from >= b.size {
		return None
	}

	i := from / 64
	w := ^b.v[i] & (^uint64(0) << (uint(from) % 64))
	for {
		if w != 0 {
			if j := i*64 + bits.TrailingZeros64(w); j < b.size {
				return j
			}
			return None
		}
		if i++; i >= len(b.v) {
			return None
		}
		w = ^b.v[i]
	}
}

// Bits returns the indices of all set bits in ascending order
func (b *BitVector) Bits() []int {
	v := make([]int, 0, b.Cardinality())
	for i, w := range b.v {
		for w != 0 {
			v = append(v, i*64+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
	return v
}
