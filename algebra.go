// algebra.go -- boolean set operations on bitvectors
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvector

// Every binary operation comes in two forms:
//
//   - x.OpInto(y, out) writes the result into 'out' without changing its
//     size; it fails with ErrInsufficientOutputSize if out is too small.
//     'out' may be x or y, which makes the operation in-place.
//   - x.Op(y) returns a newly allocated result.
//
// The result of And() has min(x.Size(), y.Size()) bits; Or() and Xor()
// have max(x.Size(), y.Size()) bits; AndNot() has x.Size() bits.

// AndInto writes b & x into 'out'.
func (b *BitVector) AndInto(x, out *BitVector) error {
	return b.combine(x, out, min(b.size, x.size), opAnd)
}

// OrInto writes b | x into 'out'.
func (b *BitVector) OrInto(x, out *BitVector) error {
	return b.combine(x, out, max(b.size, x.size), opOr)
}

// XorInto writes b ^ x into 'out'.
func (b *BitVector) XorInto(x, out *BitVector) error {
	return b.combine(x, out, max(b.size, x.size), opXor)
}

// AndNotInto writes b &^ x (the bits of b that are not in x) into 'out'.
func (b *BitVector) AndNotInto(x, out *BitVector) error {
	return b.combine(x, out, b.size, opAndNot)
}

// NotInto writes the complement of b over [0, b.Size()) into 'out'. Bits of
// out at or above b.Size() are cleared.
func (b *BitVector) NotInto(out *BitVector) error {
	if out.size < b.size {
		return errOutput(b.size, out.size)
	}

	n := len(b.v)
	for i := range out.v {
		if i < n {
			out.v[i] = ^b.v[i]
		} else {
			out.v[i] = 0
		}
	}
	if n > 0 {
		out.v[n-1] &= tailMask(b.size)
	}
	return nil
}

// And returns a new bitvector holding b & x
func (b *BitVector) And(x *BitVector) *BitVector {
	out := alloc(min(b.size, x.size))
	b.AndInto(x, out)
	return out
}

// Or returns a new bitvector holding b | x
func (b *BitVector) Or(x *BitVector) *BitVector {
	out := alloc(max(b.size, x.size))
	b.OrInto(x, out)
	return out
}

// Xor returns a new bitvector holding b ^ x
func (b *BitVector) Xor(x *BitVector) *BitVector {
	if x == b {
		return alloc(b.size)
	}

	out := alloc(max(b.size, x.size))
	b.XorInto(x, out)
	return out
}

// AndNot returns a new bitvector holding b &^ x
func (b *BitVector) AndNot(x *BitVector) *BitVector {
	out := alloc(b.size)
	b.AndNotInto(x, out)
	return out
}

// Not returns a new bitvector holding the complement of b
func (b *BitVector) Not() *BitVector {
	out := alloc(b.size)
	b.NotInto(out)
	return out
}

// Merge ors 'x' into 'b', growing b if x is larger.
func (b *BitVector) Merge(x *BitVector) *BitVector {
	b.ExpandTo(x.size)
	for i, z := range x.v {
		b.v[i] |= z
	}
	return b
}

type wordOp int

const (
	opAnd wordOp = iota
	opOr
	opXor
	opAndNot
)

func (op wordOp) eval(a, b uint64) uint64 {
	switch op {
	case opAnd:
		return a & b
	case opOr:
		return a | b
	case opXor:
		return a ^ b
	case opAndNot:
		return a &^ b
	}
	panic("unknown word op")
}

// combine applies 'op' word-by-word to b and x and writes the result into
// 'out'; 'need' is the size of the result in bits.
func (b *BitVector) combine(x, out *BitVector, need int, op wordOp) error {
	if out.size < need {
		return errOutput(need, out.size)
	}

	// x op x is either a copy of x or all zero; don't re-derive it from
	// storage that 'out' may be overwriting.
	if x == b {
		switch op {
		case opAnd, opOr:
			if out != b {
				n := copy(out.v, b.v)
				clearWords(out.v[n:])
			}
		default:
			clearWords(out.v)
		}
		return nil
	}

	for i := range out.v {
		out.v[i] = op.eval(word(b.v, i), word(x.v, i))
	}
	return nil
}

func word(v []uint64, i int) uint64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func clearWords(v []uint64) {
	for i := range v {
		v[i] = 0
	}
}

// make a zeroed bitvector of a size that is known to be valid
func alloc(size int) *BitVector {
	return &BitVector{
		v:    make([]uint64, words(size)),
		size: size,
	}
}
