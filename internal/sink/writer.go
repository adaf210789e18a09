package sink

import (
	"bufio"
	"io"
	"os"

	"github.com/Geun-Oh/wutils/internal/line"
)

// WriterSink writes lines byte-for-byte to an io.Writer through a buffer.
type WriterSink struct {
	bw   *bufio.Writer
	name string
}

// NewWriterSink creates a sink writing to w, or os.Stdout when w is nil.
func NewWriterSink(w io.Writer) *WriterSink {
	name := "writer"
	if w == nil {
		w = os.Stdout
	}
	if w == os.Stdout {
		name = "stdout"
	}
	return &WriterSink{bw: bufio.NewWriter(w), name: name}
}

// Write buffers the raw line bytes, terminator included.
func (s *WriterSink) Write(l *line.Line) error {
	_, err := s.bw.Write(l.Raw)
	return err
}

// Flush writes buffered lines to the underlying writer.
func (s *WriterSink) Flush() error {
	return s.bw.Flush()
}

// Close flushes the buffer. The underlying writer is left open.
func (s *WriterSink) Close() error {
	return s.Flush()
}

// Name returns the sink identifier.
func (s *WriterSink) Name() string {
	return s.name
}
