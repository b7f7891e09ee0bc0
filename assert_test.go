// assert_test.go -- test helpers
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
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// make a bitvector of 'size' bits with roughly 'density' of them set
func randVector(r *rand.Rand, size int, density float64) *BitVector {
	b, err := New(size)
	if err != nil {
		panic(err)
	}

	for i := 0; i < size; i++ {
		if r.Float64() < density {
			b.Set(i)
		}
	}
	return b
}

// sizes that straddle word boundaries
var testSizes = []int{0, 1, 5, 63, 64, 65, 100, 127, 128, 129, 200, 1000}
