// Package memo provides a memoizing call cache for deterministic,
// side-effect-free functions.
//
// Each Cache owns its result mapping outright: one cache per wrapped
// function, created by the wrapping and reachable only through it. There
// is no process-wide table, so separate caches and separate tests cannot
// contaminate each other.
//
// The mapping itself is pluggable (see memo/store). The default is the
// unbounded map store: entries are added on first sight of each distinct
// argument tuple and never evicted. Bounded stores trade that guarantee
// for a capacity limit under a policy each store states for itself.
package memo

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lazyworks/memoseq/memo/store"
	"github.com/lazyworks/memoseq/observe"
)

const defaultNumShards = 16

// Cache memoizes a single-valued computation keyed by K. Concurrent
// callers asking for the same absent key are coalesced: exactly one
// executes the computation, the rest wait for its result. Recursive
// self-invocation through the wrapped function is safe because no shard
// lock is held while a computation runs.
type Cache[K comparable, V any] struct {
	id     string
	store  store.Store[K, V]
	shards []shard[K, V]
	logger *zap.Logger

	hits   atomic.Uint64
	misses atomic.Uint64

	spanMu      sync.Mutex
	lastCompute observe.TimeSpan
}

type shard[K comparable, V any] struct {
	mu    sync.Mutex
	calls map[K]*inflight[V]
}

type inflight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// New returns an empty cache over st. A nil st means the unbounded map
// store; a nil logger means no logging.
func New[K comparable, V any](st store.Store[K, V], logger *zap.Logger) *Cache[K, V] {
	if st == nil {
		st = store.NewMap[K, V]()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache[K, V]{
		id:     uuid.New().String(),
		store:  st,
		shards: make([]shard[K, V], defaultNumShards),
		logger: logger,
	}
	for i := range c.shards {
		c.shards[i].calls = make(map[K]*inflight[V])
	}
	c.logger.Debug("memo cache created", zap.String("cache_id", c.id))
	return c
}

// Do returns the result stored under key, computing and storing it first
// if absent. For any fixed key, compute runs at most once no matter how
// many callers race on it; a compute error is returned to every waiter and
// not cached.
func (c *Cache[K, V]) Do(key K, compute func() (V, error)) (V, error) {
	if v, ok, err := c.store.Get(key); err != nil {
		var zero V
		return zero, fmt.Errorf("memo store lookup: %w", err)
	} else if ok {
		c.hits.Add(1)
		return v, nil
	}

	sh := &c.shards[shardIndexOf(fmt.Sprintf("%v", key), len(c.shards))]

	sh.mu.Lock()
	// The store may have been filled between the optimistic lookup and
	// taking the shard lock.
	if v, ok, err := c.store.Get(key); err != nil {
		sh.mu.Unlock()
		var zero V
		return zero, fmt.Errorf("memo store lookup: %w", err)
	} else if ok {
		sh.mu.Unlock()
		c.hits.Add(1)
		return v, nil
	}
	if call, ok := sh.calls[key]; ok {
		sh.mu.Unlock()
		<-call.done
		if call.err != nil {
			var zero V
			return zero, call.err
		}
		c.hits.Add(1)
		return call.val, nil
	}
	call := &inflight[V]{done: make(chan struct{})}
	sh.calls[key] = call
	sh.mu.Unlock()

	c.misses.Add(1)
	start := time.Now()
	call.val, call.err = compute()
	end := time.Now()

	if call.err == nil {
		if err := c.store.Set(key, call.val); err != nil {
			call.err = fmt.Errorf("memo store insert: %w", err)
		}
	}

	c.spanMu.Lock()
	c.lastCompute = observe.NewTimeSpan(start, end)
	c.spanMu.Unlock()

	sh.mu.Lock()
	delete(sh.calls, key)
	sh.mu.Unlock()
	close(call.done)

	if call.err != nil {
		c.logger.Debug("memo compute failed",
			zap.String("cache_id", c.id),
			zap.Error(call.err),
		)
		var zero V
		return zero, call.err
	}
	return call.val, nil
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Size        int // -1 when the store cannot report it
	LastCompute observe.TimeSpan
}

func (c *Cache[K, V]) Stats() Stats {
	c.spanMu.Lock()
	last := c.lastCompute
	c.spanMu.Unlock()
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Size:        c.store.Len(),
		LastCompute: last,
	}
}

// ID identifies this cache instance in logs.
func (c *Cache[K, V]) ID() string {
	return c.id
}
