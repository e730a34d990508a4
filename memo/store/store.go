// Package store defines the mapping a memoized function keeps its results
// in, together with several backends: an unbounded map (the reference
// behavior), a least-recently-used bounded cache, a generational rotating
// cache, an admission-controlled ristretto cache, and a transactional
// go-memdb table.
//
// A Store never computes values. Lookups and insertions are driven entirely
// by the owning cache; the only liberty a bounded Store takes is dropping
// entries according to its stated eviction policy, which can cost a
// recomputation but never a wrong result.
package store

// Store is the result mapping behind a memoized function.
//
// Implementations must be safe for concurrent use. Get reports whether the
// key is present; Set inserts or overwrites. Len reports the number of live
// entries, or -1 when the backend cannot tell.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool, error)
	Set(key K, value V) error
	Len() int
}
