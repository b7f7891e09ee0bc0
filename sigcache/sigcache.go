// sigcache.go -- interning of bitvector signatures
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package sigcache interns bitvector signatures: every structurally equal
// vector handed to Intern() maps to one shared canonical copy. The cache is
// bounded; least useful signatures are evicted by an ARC policy.
//
// Canonical vectors are shared between callers and must be treated as
// read-only. Clone() them before mutating.
package sigcache

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/opencoff/golang-lru"

	"github.com/opencoff/go-bitvector"
)

// Cache is a bounded set of canonical signatures. It is safe for concurrent
// use.
type Cache struct {
	mu sync.Mutex

	// hash -> []*bitvector.BitVector
	arc *lru.ARCCache

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats reports cache effectiveness
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// New creates a cache holding up to 'size' distinct signature hashes.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sigcache: invalid size %d", size)
	}

	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		arc: arc,
	}
	return c, nil
}

// Intern returns the canonical vector equal to 'v', adding a private copy
// of v if there is none yet.
func (c *Cache) Intern(v *bitvector.BitVector) *bitvector.BitVector {
	h := v.Hash()

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.bucket(h)
	for _, x := range bucket {
		if x.Equal(v) {
			c.hits.Add(1)
			return x
		}
	}

	c.misses.Add(1)
	x := v.Clone()
	c.arc.Add(h, append(bucket, x))
	return x
}

// Lookup returns the canonical vector equal to 'v' if one is cached
func (c *Cache) Lookup(v *bitvector.BitVector) (*bitvector.BitVector, bool) {
	h := v.Hash()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, x := range c.bucket(h) {
		if x.Equal(v) {
			c.hits.Add(1)
			return x, true
		}
	}

	c.misses.Add(1)
	return nil, false
}

// Len returns the number of cached hash buckets
func (c *Cache) Len() int {
	return c.arc.Len()
}

// Purge drops every cached signature
func (c *Cache) Purge() {
	c.mu.Lock()
	c.arc.Purge()
	c.mu.Unlock()
}

// Stats returns the hit/miss counters and the current size
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.Len(),
	}
}

// must be called with the lock held
func (c *Cache) bucket(h uint64) []*bitvector.BitVector {
	if v, ok := c.arc.Get(h); ok {
		return v.([]*bitvector.BitVector)
	}
	return nil
}
