package store

import (
	lru "github.com/hashicorp/golang-lru"
)

var _ Store[string, any] = &LRU[string, any]{}

// LRU is a capacity-bounded store with least-recently-used eviction. Get
// counts as a use. Exceeding the capacity evicts the entry whose last use
// is oldest; the evicted key is simply recomputed on its next call.
type LRU[K comparable, V any] struct {
	cache *lru.Cache
}

func NewLRU[K comparable, V any](capacity int) (*LRU[K, V], error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{cache: cache}, nil
}

func (l *LRU[K, V]) Get(key K) (V, bool, error) {
	raw, ok := l.cache.Get(key)
	if !ok {
		var zero V
		return zero, false, nil
	}
	return raw.(V), true, nil
}

func (l *LRU[K, V]) Set(key K, value V) error {
	l.cache.Add(key, value)
	return nil
}

func (l *LRU[K, V]) Len() int {
	return l.cache.Len()
}
