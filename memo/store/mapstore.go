package store

import (
	"sync"
	"sync/atomic"
)

var _ Store[string, any] = &Map[string, any]{}

// Map is the unbounded reference store. Entries are added on first
// computation of each distinct key and never expire or get evicted, so the
// mapping grows monotonically for the lifetime of the wrapped function.
type Map[K comparable, V any] struct {
	entries sync.Map
	size    atomic.Int64
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func (m *Map[K, V]) Get(key K) (V, bool, error) {
	raw, ok := m.entries.Load(key)
	if !ok {
		var zero V
		return zero, false, nil
	}
	return raw.(V), true, nil
}

func (m *Map[K, V]) Set(key K, value V) error {
	if _, loaded := m.entries.Swap(key, value); !loaded {
		m.size.Add(1)
	}
	return nil
}

func (m *Map[K, V]) Len() int {
	return int(m.size.Load())
}
