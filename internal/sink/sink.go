// Package sink defines the Sink interface for pipeline output.
package sink

import (
	"github.com/Geun-Oh/wutils/internal/line"
)

// Sink receives matched lines and writes them to an output destination.
type Sink interface {
	// Write outputs a single line.
	Write(l *line.Line) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close flushes and releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}
