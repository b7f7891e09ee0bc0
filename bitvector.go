// bitvector.go -- resizable bit vectors packed into 64-bit words
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package bitvector implements a resizable bit vector: a finite set of
// small non-negative integers packed into 64-bit words. A typical use is a
// component signature in an entity-component system ("does entity X have
// component type i?").
//
// A BitVector has a logical size; valid bit indices are [0, Size()).
// Every access outside that range returns an error and leaves the vector
// untouched. Bits at or above Size() are always zero in the backing words;
// population counts, equality, hashing and ordering rely on this.
//
// A BitVector is not safe for concurrent mutation. Use Clone() to hand an
// independent snapshot to another goroutine.
package bitvector

// None is returned by the scan functions when there is no matching bit.
const None = -1

// BitVector represents a bit vector in an efficient manner.
// The zero value is an empty vector of size 0.
type BitVector struct {
	v    []uint64
	size int
}

// New creates a bitvector that can address 'size' bits; all of them are
// clear.
func New(size int) (*BitVector, error) {
	if size < 0 {
		return nil, errCapacity(size)
	}

	b := &BitVector{
		v:    make([]uint64, words(size)),
		size: size,
	}
	return b, nil
}

// FromBits creates a bitvector of 'size' bits with each index in 'idx' set.
func FromBits(size int, idx ...int) (*BitVector, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}

	if err := b.SetAll(idx...); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns a deep copy of b; the copy shares no storage with b.
func (b *BitVector) Clone() *BitVector {
	c := &BitVector{
		v:    make([]uint64, len(b.v)),
		size: b.size,
	}
	copy(c.v, b.v)
	return c
}

// Size returns the number of addressable bits in this bitvector
func (b *BitVector) Size() int {
	return b.size
}

// Words returns the number of words in the array
func (b *BitVector) Words() int {
	return len(b.v)
}

// Get returns true if the bit 'i' is set, false otherwise
func (b *BitVector) Get(i int) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	return b.isSet(i), nil
}

// Set sets the bit 'i' in the bitvector
func (b *BitVector) Set(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.v[i/64] |= uint64(1) << (uint(i) % 64)
	return nil
}

// Clear clears bit 'i'
func (b *BitVector) Clear(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.v[i/64] &^= uint64(1) << (uint(i) % 64)
	return nil
}

// SetAll sets every bit in 'idx'. The indices are validated before any bit
// is touched: if one of them is out of range, nothing is set.
func (b *BitVector) SetAll(idx ...int) error {
	if err := b.checkAll(idx); err != nil {
		return err
	}

	for _, i := range idx {
		b.v[i/64] |= uint64(1) << (uint(i) % 64)
	}
	return nil
}

// ClearAll clears every bit in 'idx' with the same all-or-nothing
// validation as SetAll. With no arguments it does nothing; use Reset() to
// clear the whole vector.
func (b *BitVector) ClearAll(idx ...int) error {
	if err := b.checkAll(idx); err != nil {
		return err
	}

	for _, i := range idx {
		b.v[i/64] &^= uint64(1) << (uint(i) % 64)
	}
	return nil
}

// Reset clears all the bits in the bitvector; the size is unchanged.
func (b *BitVector) Reset() *BitVector {
	v := b.v
	for i := range v {
		v[i] = 0
	}
	return b
}

// Fill sets (flag == true) or clears every bit in the half-open interval
// [from, to).
func (b *BitVector) Fill(from, to int, flag bool) error {
	if from < 0 || from > to || to > b.size {
		return errRange(from, to, b.size)
	}
	if from == to {
		return nil
	}

	fw := from / 64
	lw := (to - 1) / 64
	fm := ^uint64(0) << (uint(from) % 64)
	lm := ^uint64(0) >> (63 - (uint(to-1) % 64))

	if fw == lw {
		b.apply(fw, fm&lm, flag)
		return nil
	}

	b.apply(fw, fm, flag)
	for i := fw + 1; i < lw; i++ {
		b.apply(i, ^uint64(0), flag)
	}
	b.apply(lw, lm, flag)
	return nil
}

func (b *BitVector) apply(w int, mask uint64, flag bool) {
	if flag {
		b.v[w] |= mask
	} else {
		b.v[w] &^= mask
	}
}

func (b *BitVector) isSet(i int) bool {
	w := b.v[i/64]
	return 1 == (1 & (w >> (uint(i) % 64)))
}

func (b *BitVector) check(i int) error {
	if i < 0 || i >= b.size {
		return errIndex(i, b.size)
	}
	return nil
}

func (b *BitVector) checkAll(idx []int) error {
	for _, i := range idx {
		if err := b.check(i); err != nil {
			return err
		}
	}
	return nil
}

// number of words needed to hold n bits
func words(n int) int {
	return (n + 63) / 64
}

// mask for the valid bits of the last word of an n-bit vector; all ones
// when n is a multiple of 64.
func tailMask(n int) uint64 {
	if r := uint(n) % 64; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}
