package source

import (
	"fmt"
	"io"
	"os"
)

// FileSource reads lines from a named file.
type FileSource struct {
	path string
}

// NewFileSource creates a source that reads from a file.
// The file is not touched until Open is called.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Path returns the file path as given on the command line.
func (s *FileSource) Path() string {
	return s.path
}

// Open opens the file for reading.
func (s *FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &OpenError{Source: s.Name(), Path: s.Path(), Err: err}
	}
	return f, nil
}
