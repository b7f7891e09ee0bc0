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
	"fmt"
)

var (
	// ErrNegativeCapacity is returned when a bitvector is created with a
	// negative number of bits.
	ErrNegativeCapacity = errors.New("negative capacity")

	// ErrIndexOutOfRange is returned when a bit index is outside [0, Size()).
	// CardinalityTo() also returns it when its bound is outside [0, Size()].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned by Fill() when the half-open interval is
	// malformed or not contained in [0, Size()].
	ErrInvalidRange = errors.New("invalid range")

	// ErrInsufficientOutputSize is returned by the *Into() operations when
	// the destination is too small to hold the result.
	ErrInsufficientOutputSize = errors.New("insufficient output size")
)

func errCapacity(n int) error {
	return fmt.Errorf("bitvector: %w: %d", ErrNegativeCapacity, n)
}

func errIndex(i, size int) error {
	return fmt.Errorf("bitvector: %w: %d not in [0, %d)", ErrIndexOutOfRange, i, size)
}

func errRange(from, to, size int) error {
	return fmt.Errorf("bitvector: %w: [%d, %d) with size %d", ErrInvalidRange, from, to, size)
}

func errOutput(need, saw int) error {
	return fmt.Errorf("bitvector: %w; exp %d, saw %d", ErrInsufficientOutputSize, need, saw)
}
