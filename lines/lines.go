// Package lines streams line-oriented text one line at a time, keeping
// memory proportional to a single line.
//
// The file-backed form treats the handle as a scoped acquisition: it is
// opened when iteration starts and released exactly once when iteration
// ends, whether the consumer drains the source, breaks early, or an error
// stops production.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnavailable reports a source that could not be opened.
	ErrUnavailable = fmt.Errorf("line source unavailable")
	// ErrDecoding reports line content invalid under the declared
	// encoding. Production stops; nothing is skipped silently.
	ErrDecoding = fmt.Errorf("line content is not valid text")
)

// File streams the lines of the file at path in order, trailing
// terminators stripped. The file is opened lazily on first iteration; if
// the open fails the sequence yields a single ErrUnavailable and ends.
// Each ranging of the sequence is its own acquisition.
func File(path string, opts ...Option) iter.Seq2[string, error] {
	cfg := newConfig(opts)
	return func(yield func(string, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield("", fmt.Errorf("%w: %w", ErrUnavailable, err))
			return
		}
		sourceID := uuid.New().String()
		cfg.logger.Debug("line source acquired",
			zap.String("source_id", sourceID),
			zap.String("path", path),
		)
		defer func() {
			f.Close()
			cfg.logger.Debug("line source released",
				zap.String("source_id", sourceID),
				zap.String("path", path),
			)
		}()
		scan(f, cfg, yield)
	}
}

// FromReadCloser streams lines from rc and owns its release: rc is closed
// exactly once when iteration ends on any path. The sequence must be
// ranged at most once, since the first pass consumes and closes rc.
func FromReadCloser(rc io.ReadCloser, opts ...Option) iter.Seq2[string, error] {
	cfg := newConfig(opts)
	return func(yield func(string, error) bool) {
		defer rc.Close()
		scan(rc, cfg, yield)
	}
}

// FromReader streams lines from r without taking ownership; releasing r
// stays with the caller.
func FromReader(r io.Reader, opts ...Option) iter.Seq2[string, error] {
	cfg := newConfig(opts)
	return func(yield func(string, error) bool) {
		scan(r, cfg, yield)
	}
}

func scan(r io.Reader, cfg config, yield func(string, error) bool) {
	scanner := bufio.NewScanner(r)
	if cfg.maxLineSize > 0 {
		scanner.Buffer(make([]byte, 0, 1024), cfg.maxLineSize)
	}
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			yield("", fmt.Errorf("%w: invalid utf-8", ErrDecoding))
			return
		}
		if !yield(line, nil) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		yield("", fmt.Errorf("reading line source: %w", err))
	}
}
