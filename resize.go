// resize.go -- growing and shrinking bitvectors
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvector

// ExpandTo raises the size of the bitvector to 'n' bits. It does nothing
// if n <= Size(). New bits are clear.
func (b *BitVector) ExpandTo(n int) *BitVector {
	if n <= b.size {
		return b
	}

	if nw := words(n); nw > len(b.v) {
		v := make([]uint64, nw)
		copy(v, b.v)
		b.v = v
	}
	b.size = n
	return b
}

// CompressTo lowers the size of the bitvector to 'n' bits. It does nothing
// unless 0 <= n < Size(). Bits at or above n are discarded and the backing
// storage is trimmed to the minimum number of words.
func (b *BitVector) CompressTo(n int) *BitVector {
	if n < 0 || n >= b.size {
		return b
	}

	nw := words(n)
	v := make([]uint64, nw)
	copy(v, b.v[:nw])
	if nw > 0 {
		v[nw-1] &= tailMask(n)
	}

	b.v = v
	b.size = n
	return b
}
