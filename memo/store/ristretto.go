package store

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

var _ Store[string, any] = &Ristretto[any]{}

// Ristretto is a string-keyed, admission-controlled bounded store. Its
// admission policy may drop a Set outright, and writes are applied
// asynchronously, so a stored value can be missing on the next Get; the
// cache then recomputes. Use it when the keyspace is large and hot keys
// should win, not when every computation must be cached.
type Ristretto[V any] struct {
	cache *ristretto.Cache[string, V]
}

func NewRistretto[V any](maxEntries int64) (*Ristretto[V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: 10 * maxEntries, // number of keys to track frequency of
		MaxCost:     maxEntries,      // unit cost per entry
		BufferItems: 64,              // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[V]{cache: cache}, nil
}

func (r *Ristretto[V]) Get(key string) (V, bool, error) {
	v, ok := r.cache.Get(key)
	return v, ok, nil
}

func (r *Ristretto[V]) Set(key string, value V) error {
	r.cache.Set(key, value, 1)
	return nil
}

// Len is unknown for ristretto.
func (r *Ristretto[V]) Len() int {
	return -1
}

// Wait blocks until buffered writes have been applied. Tests use it to
// make Set visible before asserting on Get.
func (r *Ristretto[V]) Wait() {
	r.cache.Wait()
}
