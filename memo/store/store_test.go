package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyworks/memoseq/memo/store"
)

func TestMap_Roundtrip(t *testing.T) {
	m := store.NewMap[string, int]()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("a", 1))
	require.NoError(t, m.Set("b", 2))
	require.NoError(t, m.Set("a", 3)) // overwrite, not a new entry

	v, ok, err := m.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	l, err := store.NewLRU[string, int](2)
	require.NoError(t, err)

	require.NoError(t, l.Set("a", 1))
	require.NoError(t, l.Set("b", 2))

	// Touch "a" so "b" is the least recently used entry.
	_, ok, err := l.Get("a")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, l.Set("c", 3))

	_, ok, err = l.Get("b")
	require.NoError(t, err)
	assert.False(t, ok, "b was least recently used and must be gone")

	v, ok, err := l.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, l.Len())
}

func TestRotating_BoundedGrowth(t *testing.T) {
	r, err := store.NewRotating[int, int](4)
	require.NoError(t, err)

	for i := range 100 {
		require.NoError(t, r.Set(i, i))
	}

	// At most two generations of maxSize entries stay readable.
	live := 0
	for i := range 100 {
		if _, ok, err := r.Get(i); err == nil && ok {
			live++
		}
	}
	assert.LessOrEqual(t, live, 8)
	assert.GreaterOrEqual(t, live, 4, "the newest generation must survive")

	// The most recent write is always readable.
	v, ok, err := r.Get(99)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestRotating_ConcurrentFlips(t *testing.T) {
	r, err := store.NewRotating[int, int](4)
	require.NoError(t, err)

	// Readers overlap writers across many generation flips; every value
	// that is still readable must be the one written for its key.
	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := g*200 + i
				assert.NoError(t, r.Set(key, key*key))
				for j := key - 3; j <= key; j++ {
					if v, ok, err := r.Get(j); assert.NoError(t, err) && ok {
						assert.Equal(t, j*j, v)
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestRotating_RejectsZeroSize(t *testing.T) {
	_, err := store.NewRotating[int, int](0)
	assert.Error(t, err)
}

func TestMemDB_Roundtrip(t *testing.T) {
	m, err := store.NewMemDB[string]()
	require.NoError(t, err)

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("greeting", "hello"))
	require.NoError(t, m.Set("greeting", "hola")) // unique index replaces

	v, ok, err := m.Get("greeting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hola", v)
	assert.Equal(t, -1, m.Len())
}

func TestRistretto_Roundtrip(t *testing.T) {
	r, err := store.NewRistretto[int](128)
	require.NoError(t, err)

	require.NoError(t, r.Set("answer", 42))
	r.Wait()

	v, ok, err := r.Get("answer")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, -1, r.Len())
}

func TestStores_ShareContract(t *testing.T) {
	stores := map[string]store.Store[string, int]{
		"map": store.NewMap[string, int](),
	}
	if l, err := store.NewLRU[string, int](8); assert.NoError(t, err) {
		stores["lru"] = l
	}
	if r, err := store.NewRotating[string, int](8); assert.NoError(t, err) {
		stores["rotating"] = r
	}
	if m, err := store.NewMemDB[int](); assert.NoError(t, err) {
		stores["memdb"] = m
	}

	for name, st := range stores {
		t.Run(name, func(t *testing.T) {
			for i := range 4 {
				require.NoError(t, st.Set(fmt.Sprint(i), i*i))
			}
			for i := range 4 {
				v, ok, err := st.Get(fmt.Sprint(i))
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, i*i, v)
			}
		})
	}
}
