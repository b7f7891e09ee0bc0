// algebra_test.go -- test suite for and/or/xor/not
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
	"math/rand"
	"testing"
)

func TestAlgebraSimple(t *testing.T) {
	assert := newAsserter(t)

	a, _ := FromBits(8, 1, 2, 3)
	b, _ := FromBits(70, 2, 3, 4, 65)

	and := a.And(b)
	assert(and.Size() == 8, "and size %d", and.Size())
	assert(eqBits(and.Bits(), 2, 3), "and bits %v", and.Bits())

	or := a.Or(b)
	assert(or.Size() == 70, "or size %d", or.Size())
	assert(eqBits(or.Bits(), 1, 2, 3, 4, 65), "or bits %v", or.Bits())

	xor := a.Xor(b)
	assert(xor.Size() == 70, "xor size %d", xor.Size())
	assert(eqBits(xor.Bits(), 1, 4, 65), "xor bits %v", xor.Bits())

	andnot := b.AndNot(a)
	assert(andnot.Size() == 70, "andnot size %d", andnot.Size())
	assert(eqBits(andnot.Bits(), 4, 65), "andnot bits %v", andnot.Bits())

	not := a.Not()
	assert(not.Size() == 8, "not size %d", not.Size())
	assert(eqBits(not.Bits(), 0, 4, 5, 6, 7), "not bits %v", not.Bits())
}

func TestAlgebraLaws(t *testing.T) {
	assert := newAsserter(t)
	r := rand.New(rand.NewSource(7))

	for _, x := range testSizes {
		for _, y := range testSizes {
			a := randVector(r, x, 0.4)
			b := randVector(r, y, 0.6)

			assert(a.And(b).Equal(b.And(a)), "and not commutative: %d/%d", x, y)
			assert(a.Or(b).Equal(b.Or(a)), "or not commutative: %d/%d", x, y)
			assert(a.Xor(b).Equal(b.Xor(a)), "xor not commutative: %d/%d", x, y)

			n := a.Or(b).Cardinality() + a.And(b).Cardinality()
			assert(n == a.Cardinality()+b.Cardinality(), "cardinality not additive: %d/%d", x, y)

			// a ^ b == (a | b) &^ (a & b)
			assert(a.Xor(b).EqualIgnoreSize(a.Or(b).AndNot(a.And(b))), "xor identity: %d/%d", x, y)

			z := a.Xor(a)
			assert(z.Size() == x && z.IsEmpty(), "a^a: %s", z)

			nn := a.Not().Not()
			assert(nn.EqualIgnoreSize(a), "~~a != a: %s vs %s", nn, a)
			assert(a.Not().Cardinality() == x-a.Cardinality(), "~a cardinality: %d", x)
		}
	}
}

func TestAlgebraInto(t *testing.T) {
	assert := newAsserter(t)

	a, _ := FromBits(10, 1, 2, 9)
	b, _ := FromBits(100, 2, 70)

	// out is larger than needed and has junk in it
	out, _ := New(200)
	out.Fill(0, 200, true)

	err := a.AndInto(b, out)
	assert(err == nil, "and: %s", err)
	assert(out.Size() == 200, "out size changed to %d", out.Size())
	assert(eqBits(out.Bits(), 2), "and bits %v", out.Bits())

	out.Fill(0, 200, true)
	err = a.OrInto(b, out)
	assert(err == nil, "or: %s", err)
	assert(eqBits(out.Bits(), 1, 2, 9, 70), "or bits %v", out.Bits())

	err = a.XorInto(b, out)
	assert(err == nil, "xor: %s", err)
	assert(eqBits(out.Bits(), 1, 9, 70), "xor bits %v", out.Bits())

	err = a.NotInto(out)
	assert(err == nil, "not: %s", err)
	assert(eqBits(out.Bits(), 0, 3, 4, 5, 6, 7, 8), "not bits %v", out.Bits())
}

func TestAlgebraInsufficientOutput(t *testing.T) {
	assert := newAsserter(t)

	a, _ := FromBits(10, 1)
	b, _ := FromBits(100, 2)
	small, _ := New(9)
	mid, _ := New(10)
	small.Set(0)

	err := a.AndInto(b, small)
	assert(errors.Is(err, ErrInsufficientOutputSize), "and: saw %v", err)
	assert(a.AndInto(b, mid) == nil, "and into exact size failed")

	err = a.OrInto(b, mid)
	assert(errors.Is(err, ErrInsufficientOutputSize), "or: saw %v", err)
	err = a.XorInto(b, mid)
	assert(errors.Is(err, ErrInsufficientOutputSize), "xor: saw %v", err)
	err = a.NotInto(small)
	assert(errors.Is(err, ErrInsufficientOutputSize), "not: saw %v", err)

	ok, _ := small.Get(0)
	assert(ok && small.Cardinality() == 1, "failed op mutated output: %s", small)
}

func TestAlgebraAliasing(t *testing.T) {
	assert := newAsserter(t)

	a, _ := FromBits(70, 1, 64, 69)
	ref := a.Clone()

	// x op x
	err := a.AndInto(a, a)
	assert(err == nil && a.Equal(ref), "a&a in place: %s", a)
	err = a.OrInto(a, a)
	assert(err == nil && a.Equal(ref), "a|a in place: %s", a)

	out, _ := New(130)
	out.Fill(0, 130, true)
	err = a.OrInto(a, out)
	assert(err == nil && out.EqualIgnoreSize(ref), "a|a into out: %s", out)

	err = a.XorInto(a, a)
	assert(err == nil && a.IsEmpty() && a.Size() == 70, "a^a in place: %s", a)

	// in place against another vector
	a = ref.Clone()
	b, _ := FromBits(10, 1, 2)
	err = a.OrInto(b, a)
	assert(err == nil, "or in place: %s", err)
	assert(eqBits(a.Bits(), 1, 2, 64, 69), "or in place bits %v", a.Bits())

	err = b.AndInto(a, b)
	assert(err == nil, "and into other: %s", err)
	assert(eqBits(b.Bits(), 1, 2), "and into other bits %v", b.Bits())

	err = a.NotInto(a)
	assert(err == nil, "not in place: %s", err)
	assert(a.Cardinality() == 70-4, "not in place cardinality %d", a.Cardinality())
}

func TestAlgebraMerge(t *testing.T) {
	assert := newAsserter(t)

	av, _ := New(60)
	bv, _ := New(130)
	for i := 0; i < 60; i++ {
		if 1 == (i & 1) {
			bv.Set(i)
		} else {
			av.Set(i)
		}
	}
	bv.Set(129)

	av.Merge(bv)
	assert(av.Size() == 130, "merged size %d", av.Size())
	for i := 0; i < 60; i++ {
		ok, _ := av.Get(i)
		assert(ok, "merged bit %d not set", i)
	}
	assert(av.HighBit() == 129, "merged high bit %d", av.HighBit())
}

func eqBits(v []int, exp ...int) bool {
	if len(v) != len(exp) {
		return false
	}
	for i := range v {
		if v[i] != exp[i] {
			return false
		}
	}
	return true
}
