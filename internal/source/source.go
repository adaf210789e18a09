// Package source defines the Source interface and line reading for wutils input.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/Geun-Oh/wutils/internal/line"
)

// Source is a lazily opened input. Sources are opened one at a time by the
// pipeline and closed as soon as their lines are exhausted.
type Source interface {
	// Open makes the source readable. A failed open returns an *OpenError.
	Open() (io.ReadCloser, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}

// OpenError reports a source that could not be opened for reading.
type OpenError struct {
	Source string // source identifier, e.g. file:<path>
	Path   string // path as given by the user, empty for non-file sources
	Err    error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Source, e.Err)
}

// Target returns the path the user named, falling back to the source identifier.
func (e *OpenError) Target() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Source
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// FromArgs builds the sources named on a command line.
// When no paths are given, stdin is the only source.
func FromArgs(paths []string, stdin io.Reader) []Source {
	if len(paths) == 0 {
		return []Source{NewStdinSource(stdin)}
	}
	return FromPaths(paths)
}

// FromPaths builds one FileSource per path, in order.
func FromPaths(paths []string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, NewFileSource(p))
	}
	return sources
}

// Lines returns the lines of r in order. Each line keeps its trailing
// newline; a final line without one is yielded as-is. Line length is
// unbounded. A read error is yielded once and ends the sequence.
func Lines(r io.Reader, name string) iter.Seq2[line.Line, error] {
	return func(yield func(line.Line, error) bool) {
		br := bufio.NewReaderSize(r, 64*1024)
		var n uint64

		for {
			// ReadBytes allocates a fresh slice per call, so lines can be retained.
			raw, err := br.ReadBytes('\n')
			if len(raw) > 0 {
				n++
				if !yield(line.Line{Source: name, Number: n, Raw: raw}, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(line.Line{}, fmt.Errorf("read %s: %w", name, err))
				}
				return
			}
		}
	}
}
