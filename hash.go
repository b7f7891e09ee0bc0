// hash.go -- hashing and debug output for bitvectors
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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dchest/siphash"
	"github.com/opencoff/go-fasthash"
)

// Hash keys are picked once per process; hashes are not meant to be
// persisted.
var (
	hashKey  = randbytes(16)
	hashSeed = rand64()
)

// Hash returns a siphash-2-4 of the size and the words of b. Vectors that
// are Equal() have the same Hash().
func (b *BitVector) Hash() uint64 {
	var z [8]byte

	binary.LittleEndian.PutUint64(z[:], uint64(b.size))

	h := siphash.New(hashKey)
	h.Write(z[:])
	h.Write(u64sToByteSlice(b.v))
	return h.Sum64()
}

// ValueHash returns a hash of the set bits of b only. Vectors that are
// EqualIgnoreSize() have the same ValueHash().
func (b *BitVector) ValueHash() uint64 {
	n := len(b.v)
	for n > 0 && b.v[n-1] == 0 {
		n--
	}
	return fasthash.Hash64(hashSeed, u64sToByteSlice(b.v[:n]))
}

// String returns a human readable dump of b: the size, the number of words
// and the words themselves, most significant word first. It is meant for
// diagnostics; the format may change.
func (b *BitVector) String() string {
	var s strings.Builder

	fmt.Fprintf(&s, "BitVector<size %d, %d words>[", b.size, len(b.v))
	for i := len(b.v) - 1; i >= 0; i-- {
		fmt.Fprintf(&s, "0x%016x", b.v[i])
		if i > 0 {
			s.WriteByte(' ')
		}
	}
	s.WriteByte(']')
	return s.String()
}
