// Package core wires sources, filters and sinks into the wgrep and wcat commands.
package core

import (
	"context"
	"errors"
	"io"

	"github.com/Geun-Oh/wutils/internal/filter"
	"github.com/Geun-Oh/wutils/internal/monitor"
	"github.com/Geun-Oh/wutils/internal/pipeline"
	"github.com/Geun-Oh/wutils/internal/sink"
	"github.com/Geun-Oh/wutils/internal/source"
)

// ErrMissingArgument is returned when wgrep is invoked without a search term.
var ErrMissingArgument = errors.New("missing search term")

// Grep writes every line of the named files that contains term to stdout.
// With no paths, stdin is searched instead. An empty term matches every line.
func Grep(ctx context.Context, term string, paths []string, stdin io.Reader, stdout io.Writer) error {
	return pipeline.Run(ctx, &pipeline.Config{
		Sources: source.FromArgs(paths, stdin),
		Filters: filter.NewChain(filter.NewKeywordFilter(term)),
		Sinks:   []sink.Sink{sink.NewWriterSink(stdout)},
		Stats:   monitor.NewStats(),
	})
}

// Cat writes the named files to stdout in order. With no paths it does nothing.
func Cat(ctx context.Context, paths []string, stdout io.Writer) error {
	if len(paths) == 0 {
		return nil
	}
	return pipeline.Run(ctx, &pipeline.Config{
		Sources: source.FromPaths(paths),
		Filters: filter.NewChain(),
		Sinks:   []sink.Sink{sink.NewWriterSink(stdout)},
		Stats:   monitor.NewStats(),
	})
}
