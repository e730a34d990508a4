// Package observe provides caller-level wrappers around plain functions:
// call timing reported through zap, and bounded retry.
//
// Nothing in this package changes what the wrapped function computes.
// Retry in particular is a policy the caller layers on top of a fallible
// operation; the sequencing and caching mechanisms of this module never
// retry on their own.
package observe

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Timed wraps fn so that every call logs its name, elapsed duration and
// the time span the call covered.
func Timed[I, O any](name string, logger *zap.Logger, fn func(I) O) func(I) O {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(in I) O {
		start := time.Now()
		out := fn(in)
		end := time.Now()
		logger.Info("timed call",
			zap.String("name", name),
			zap.Duration("elapsed", end.Sub(start)),
			zap.String("span", NewTimeSpan(start, end).String()),
		)
		return out
	}
}

// ErrMaxAttempts is returned by Retry once every attempt has failed.
var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retry calls fn up to maxAttempts times, stopping at the first success.
// The final failure is wrapped together with ErrMaxAttempts.
func Retry(maxAttempts int, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, maxAttempts, err)
}
