package store

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var _ Store[string, any] = &Rotating[string, any]{}

// Rotating is a bounded store built from two generations. Writes go to the
// head generation; lookups check the head first and fall back to the
// previous one. Once the head holds maxSize entries the generations flip
// and the stale side is discarded wholesale.
//
// The policy is generational clearing: between maxSize and 2*maxSize
// entries stay live, and an entry survives a flip only by being written
// again. Cheaper than per-entry bookkeeping, coarser than LRU.
type Rotating[K comparable, V any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewRotating[K comparable, V any](maxSize uint32) (*Rotating[K, V], error) {
	if maxSize == 0 {
		return nil, fmt.Errorf("maxSize should be greater than 0")
	}
	r := &Rotating[K, V]{maxSize: maxSize}
	r.gens[0].Store(&sync.Map{})
	r.gens[1].Store(&sync.Map{})
	return r, nil
}

func (r *Rotating[K, V]) Get(key K) (V, bool, error) {
	headIdx := r.headIdx.Load()
	raw, ok := r.gens[headIdx].Load().Load(key)
	if !ok {
		raw, ok = r.gens[1-headIdx].Load().Load(key)
		if !ok {
			var zero V
			return zero, false, nil
		}
	}
	return raw.(V), true, nil
}

func (r *Rotating[K, V]) Set(key K, value V) error {
	if swapped := r.size.CompareAndSwap(r.maxSize, 0); swapped {
		headIdx := 1 - r.headIdx.Load()
		r.gens[headIdx].Store(&sync.Map{})
		r.headIdx.Store(headIdx)
	}
	r.gens[r.headIdx.Load()].Load().Store(key, value)
	r.size.Add(1)
	return nil
}

// Len reports the entry count of the head generation only; survivors in
// the previous generation are not tracked.
func (r *Rotating[K, V]) Len() int {
	return int(r.size.Load())
}
