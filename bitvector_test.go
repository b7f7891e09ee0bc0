// bitvector_test.go -- test suite for bitvector
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
	"errors"
	"testing"
)

func TestBitVectorSimple(t *testing.T) {
	assert := newAsserter(t)

	bv, err := New(100)
	assert(err == nil, "new: %s", err)
	assert(bv.Size() == 100, "size mismatch; exp 100, saw %d", bv.Size())
	assert(bv.Words() == 2, "words mismatch; exp 2, saw %d", bv.Words())

	for i := 0; i < bv.Size(); i++ {
		if 1 == (i & 1) {
			err := bv.Set(i)
			assert(err == nil, "set %d: %s", i, err)
		}
	}

	for i := 0; i < bv.Size(); i++ {
		ok, err := bv.Get(i)
		assert(err == nil, "get %d: %s", i, err)
		if 1 == (i & 1) {
			assert(ok, "%d not set", i)
		} else {
			assert(!ok, "%d is set", i)
		}
	}

	for i := 1; i < bv.Size(); i += 2 {
		err := bv.Clear(i)
		assert(err == nil, "clear %d: %s", i, err)
	}
	assert(bv.IsEmpty(), "not empty after clear: %s", bv)
}

func TestBitVectorZeroValue(t *testing.T) {
	assert := newAsserter(t)

	var bv BitVector
	assert(bv.Size() == 0, "zero value size %d", bv.Size())
	assert(bv.IsEmpty(), "zero value not empty")
	assert(bv.Cardinality() == 0, "zero value cardinality %d", bv.Cardinality())
	assert(bv.HighBit() == None, "zero value high bit %d", bv.HighBit())

	err := bv.Set(0)
	assert(errors.Is(err, ErrIndexOutOfRange), "set on empty: exp out of range, saw %v", err)

	bv.ExpandTo(70)
	assert(bv.Set(69) == nil, "set after expand failed")
	assert(bv.Cardinality() == 1, "cardinality after expand")
}

func TestBitVectorNegative(t *testing.T) {
	assert := newAsserter(t)

	bv, err := New(-1)
	assert(bv == nil, "new(-1) returned a vector")
	assert(errors.Is(err, ErrNegativeCapacity), "exp negative capacity, saw %v", err)

	_, err = FromBits(-5, 1)
	assert(errors.Is(err, ErrNegativeCapacity), "exp negative capacity, saw %v", err)
}

func TestBitVectorBounds(t *testing.T) {
	assert := newAsserter(t)

	bv, _ := New(10)
	for _, i := range []int{-1, 10, 11, 64, 1 << 20} {
		_, err := bv.Get(i)
		assert(errors.Is(err, ErrIndexOutOfRange), "get %d: saw %v", i, err)
		err = bv.Set(i)
		assert(errors.Is(err, ErrIndexOutOfRange), "set %d: saw %v", i, err)
		err = bv.Clear(i)
		assert(errors.Is(err, ErrIndexOutOfRange), "clear %d: saw %v", i, err)
	}
	assert(bv.IsEmpty(), "failed ops mutated vector: %s", bv)

	// the last valid index is fine
	assert(bv.Set(9) == nil, "set 9 failed")
	assert(bv.HighBit() == 9, "high bit; exp 9, saw %d", bv.HighBit())
}

func TestBitVectorSetAllAtomic(t *testing.T) {
	assert := newAsserter(t)

	bv, _ := New(10)
	err := bv.SetAll(1, 50)
	assert(errors.Is(err, ErrIndexOutOfRange), "exp out of range, saw %v", err)
	assert(bv.IsEmpty(), "partial SetAll: %s", bv)

	err = bv.SetAll(1, 3, 9)
	assert(err == nil, "setall: %s", err)
	assert(bv.Cardinality() == 3, "cardinality; exp 3, saw %d", bv.Cardinality())

	err = bv.ClearAll(1, 3, -1)
	assert(errors.Is(err, ErrIndexOutOfRange), "exp out of range, saw %v", err)
	assert(bv.Cardinality() == 3, "partial ClearAll: %s", bv)

	err = bv.ClearAll(1, 3)
	assert(err == nil, "clearall: %s", err)
	assert(bv.Cardinality() == 1, "cardinality; exp 1, saw %d", bv.Cardinality())

	// no indices is a no-op for both
	assert(bv.SetAll() == nil, "empty SetAll failed")
	assert(bv.ClearAll() == nil, "empty ClearAll failed")
	assert(bv.Cardinality() == 1, "empty ClearAll cleared bits")

	bv.Reset()
	assert(bv.IsEmpty(), "reset left bits: %s", bv)
	assert(bv.Size() == 10, "reset changed size to %d", bv.Size())
}

func TestBitVectorFill(t *testing.T) {
	assert := newAsserter(t)

	for _, sz := range testSizes {
		for _, r := range [][2]int{{0, sz}, {0, sz / 2}, {sz / 3, sz}, {sz / 4, sz / 2}} {
			bv, _ := New(sz)
			err := bv.Fill(r[0], r[1], true)
			assert(err == nil, "size %d: fill %v: %s", sz, r, err)

			for i := 0; i < sz; i++ {
				ok, _ := bv.Get(i)
				exp := i >= r[0] && i < r[1]
				assert(ok == exp, "size %d: fill %v: bit %d is %v", sz, r, i, ok)
			}
			assert(bv.Cardinality() == r[1]-r[0], "size %d: fill %v: cardinality %d", sz, r, bv.Cardinality())

			// and clear it back
			err = bv.Fill(r[0], r[1], false)
			assert(err == nil, "size %d: unfill %v: %s", sz, r, err)
			assert(bv.IsEmpty(), "size %d: unfill %v: %s", sz, r, bv)
		}
	}
}

func TestBitVectorFillClearsOnlyRange(t *testing.T) {
	assert := newAsserter(t)

	bv, _ := New(130)
	bv.Fill(0, 130, true)
	err := bv.Fill(60, 70, false)
	assert(err == nil, "fill: %s", err)
	assert(bv.Cardinality() == 120, "cardinality; exp 120, saw %d", bv.Cardinality())
	assert(bv.NextClearBit(0) == 60, "first clear bit %d", bv.NextClearBit(0))
	assert(bv.NextSetBit(60) == 70, "next set bit %d", bv.NextSetBit(60))
}

func TestBitVectorFillInvalid(t *testing.T) {
	assert := newAsserter(t)

	bv, _ := New(10)
	for _, r := range [][2]int{{5, 4}, {-1, 3}, {0, 11}, {11, 11}} {
		err := bv.Fill(r[0], r[1], true)
		assert(errors.Is(err, ErrInvalidRange), "fill %v: saw %v", r, err)
	}
	assert(bv.IsEmpty(), "failed fill mutated vector: %s", bv)

	for _, x := range []int{0, 5, 10} {
		err := bv.Fill(x, x, true)
		assert(err == nil, "empty fill at %d: %s", x, err)
	}
	assert(bv.IsEmpty(), "empty fill mutated vector: %s", bv)
}

func TestBitVectorClone(t *testing.T) {
	assert := newAsserter(t)

	a, _ := FromBits(70, 0, 33, 69)
	b := a.Clone()
	assert(a.Equal(b), "clone differs: %s vs %s", a, b)

	b.Set(1)
	b.ExpandTo(200)
	ok, _ := a.Get(1)
	assert(!ok, "clone shares storage")
	assert(a.Size() == 70, "clone changed source size")
	assert(a.Cardinality() == 3, "source cardinality %d", a.Cardinality())
}
