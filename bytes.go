// bytes.go -- view a slice of words as bytes
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
	"unsafe"
)

// uint64 slice to byte-slice; the result aliases 'b' and is in native
// byte order. Only suitable for in-process hashing.
func u64sToByteSlice(b []uint64) []byte {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), len(b)*8)
}
