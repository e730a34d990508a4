// Package batch partitions ordered collections into fixed-size chunks,
// produced lazily through range functions.
package batch

import (
	"fmt"
	"iter"
)

// ErrInvalidSize reports a non-positive batch size.
var ErrInvalidSize = fmt.Errorf("batch size must be positive")

// Of partitions items into successive chunks of the given size. Every
// chunk but the last has exactly size items; the last carries the
// remainder. An empty slice yields no chunks at all. Chunks are subslices
// of items, not copies, and the sequence may be ranged more than once.
func Of[T any](items []T, size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return func(yield func([]T) bool) {
		for i := 0; i < len(items); i += size {
			end := min(i+size, len(items))
			if !yield(items[i:end:end]) {
				return
			}
		}
	}, nil
}

// Resize regroups an arbitrary sequence into chunks of the given size.
// The yielded slice is reused between yields; callers that keep a chunk
// past one iteration must copy it.
func Resize[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return func(yield func([]T) bool) {
		buf := make([]T, size)
		n := 0

		for buf[n] = range seq {
			if n++; n == len(buf) {
				if !yield(buf) {
					return
				}
				n = 0
			}
		}

		if n > 0 {
			yield(buf[:n])
		}
	}, nil
}
