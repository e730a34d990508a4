package memo

import (
	"go.uber.org/zap"

	"github.com/lazyworks/memoseq/memo/store"
)

// Keyable is an argument usable as part of a lookup key: any comparable
// value, or any value implementing fmt.Stringer. Violations surface as
// ErrUnhashableKey at call time, before the wrapped function runs.
type Keyable = any

// Func1 wraps a deterministic one-argument function into an equivalent
// memoized one. A nil st means the unbounded map store.
func Func1[I1 Keyable, O any](
	fn func(I1) (O, error),
	st store.Store[TupleKey, O],
	logger *zap.Logger,
) func(I1) (O, error) {
	cache := New(st, logger)
	return func(i1 I1) (O, error) {
		key, err := keyOf(i1)
		if err != nil {
			var zero O
			return zero, err
		}
		return cache.Do(key, func() (O, error) {
			return fn(i1)
		})
	}
}

func Func2[I1, I2 Keyable, O any](
	fn func(I1, I2) (O, error),
	st store.Store[TupleKey, O],
	logger *zap.Logger,
) func(I1, I2) (O, error) {
	cache := New(st, logger)
	return func(i1 I1, i2 I2) (O, error) {
		key, err := keyOf(i1, i2)
		if err != nil {
			var zero O
			return zero, err
		}
		return cache.Do(key, func() (O, error) {
			return fn(i1, i2)
		})
	}
}

func Func3[I1, I2, I3 Keyable, O any](
	fn func(I1, I2, I3) (O, error),
	st store.Store[TupleKey, O],
	logger *zap.Logger,
) func(I1, I2, I3) (O, error) {
	cache := New(st, logger)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		key, err := keyOf(i1, i2, i3)
		if err != nil {
			var zero O
			return zero, err
		}
		return cache.Do(key, func() (O, error) {
			return fn(i1, i2, i3)
		})
	}
}

func Func4[I1, I2, I3, I4 Keyable, O any](
	fn func(I1, I2, I3, I4) (O, error),
	st store.Store[TupleKey, O],
	logger *zap.Logger,
) func(I1, I2, I3, I4) (O, error) {
	cache := New(st, logger)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		key, err := keyOf(i1, i2, i3, i4)
		if err != nil {
			var zero O
			return zero, err
		}
		return cache.Do(key, func() (O, error) {
			return fn(i1, i2, i3, i4)
		})
	}
}

// Wrap is the variadic adapter for callers without a static arity. The
// argument tuple is keyed in order; an unkeyable argument fails the call
// with ErrUnhashableKey and fn is not invoked.
func Wrap(
	fn func(args ...Keyable) (any, error),
	st store.Store[TupleKey, any],
	logger *zap.Logger,
) func(args ...Keyable) (any, error) {
	cache := New(st, logger)
	return func(args ...Keyable) (any, error) {
		key, err := keyOf(args...)
		if err != nil {
			return nil, err
		}
		return cache.Do(key, func() (any, error) {
			return fn(args...)
		})
	}
}
