package memo

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ErrUnhashableKey reports an argument that cannot serve as part of a
// lookup key. It is surfaced before the wrapped function runs.
var ErrUnhashableKey = fmt.Errorf("argument is not usable as a cache key")

// TupleKey is the comparable key form of an ordered argument tuple.
// Two tuples produce equal keys only when they have the same length and
// their arguments are equal part by part, dynamic types included.
type TupleKey struct {
	parts any
}

// link chains one key part onto the parts before it, so tuple length and
// order are part of the key itself rather than of some string encoding.
type link struct {
	prev any
	part any
}

// keyPart renders one argument as its key form. Types implementing
// fmt.Stringer are keyed by their String output; everything else is keyed
// by the value itself and must be comparable.
func keyPart(arg any) (any, error) {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String(), nil
	}
	if arg == nil {
		return nil, nil
	}
	if !reflect.TypeOf(arg).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrUnhashableKey, arg)
	}
	return arg, nil
}

// keyOf folds the key forms of an ordered argument tuple into a TupleKey.
func keyOf(args ...any) (TupleKey, error) {
	var chain any
	for _, arg := range args {
		part, err := keyPart(arg)
		if err != nil {
			return TupleKey{}, err
		}
		chain = link{prev: chain, part: part}
	}
	return TupleKey{parts: chain}, nil
}

func shardIndexOf(key string, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numShards))
	}
}
