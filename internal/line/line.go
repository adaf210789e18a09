// Package line defines the Line type passed through the wutils pipeline.
package line

import (
	"bytes"
	"fmt"
)

// Line is a single line read from a source.
type Line struct {
	Source string // source identifier (file:<path>, stdin)
	Number uint64 // 1-based position within Source
	Raw    []byte // line bytes, including the trailing newline when present
}

// Text returns the line content without its trailing line terminator.
func (l *Line) Text() string {
	b := bytes.TrimSuffix(l.Raw, []byte{'\n'})
	return string(bytes.TrimSuffix(b, []byte{'\r'}))
}

// Format returns a short description of the line for log messages.
func (l *Line) Format() string {
	return fmt.Sprintf("[%s:%d]: %s", l.Source, l.Number, l.Text())
}
