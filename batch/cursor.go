package batch

import "iter"

// Cursor is a single-pass pull view over a batch sequence. Unlike the
// range form it is not restartable: once exhausted or stopped, a fresh
// cursor must be derived from the source. A Cursor belongs to one
// goroutine.
type Cursor[T any] struct {
	next func() ([]T, bool)
	stop func()
}

// NewCursor starts a cursor over items chunked at the given size.
func NewCursor[T any](items []T, size int) (*Cursor[T], error) {
	seq, err := Of(items, size)
	if err != nil {
		return nil, err
	}
	next, stop := iter.Pull(seq)
	return &Cursor[T]{next: next, stop: stop}, nil
}

// Next returns the next chunk, or false once the source is exhausted or
// the cursor stopped.
func (c *Cursor[T]) Next() ([]T, bool) {
	return c.next()
}

// Stop releases the cursor early. Safe to call more than once, and after
// exhaustion.
func (c *Cursor[T]) Stop() {
	c.stop()
}
