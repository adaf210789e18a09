package source

import (
	"io"
	"os"
)

// StdinSource reads lines from the process's standard input (pipe mode).
type StdinSource struct {
	r io.Reader
}

// NewStdinSource creates a source that reads from r, or os.Stdin when r is nil.
func NewStdinSource(r io.Reader) *StdinSource {
	if r == nil {
		r = os.Stdin
	}
	return &StdinSource{r: r}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Open returns the reader wrapped so that closing it leaves stdin open.
func (s *StdinSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}
