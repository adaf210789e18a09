// Package pipeline orchestrates Source → Filter → Sink processing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/Geun-Oh/wutils/internal/filter"
	"github.com/Geun-Oh/wutils/internal/line"
	"github.com/Geun-Oh/wutils/internal/monitor"
	"github.com/Geun-Oh/wutils/internal/sink"
	"github.com/Geun-Oh/wutils/internal/source"
)

// Config holds pipeline configuration.
type Config struct {
	Sources []source.Source // processed strictly in order
	Filters *filter.Chain   // nil passes every line
	Sinks   []sink.Sink
	Stats   *monitor.Stats
}

// Matches returns the lines of cfg.Sources that pass cfg.Filters, in order.
//
// Sources are opened one at a time and closed once drained. The first
// open or read failure is yielded as an error and ends the sequence, so
// sources after it are never opened.
func Matches(ctx context.Context, cfg *Config) iter.Seq2[line.Line, error] {
	stats := cfg.Stats
	if stats == nil {
		stats = monitor.NewStats()
	}

	return func(yield func(line.Line, error) bool) {
		for _, src := range cfg.Sources {
			if err := ctx.Err(); err != nil {
				yield(line.Line{}, err)
				return
			}
			if !drain(ctx, src, cfg.Filters, stats, yield) {
				return
			}
		}
	}
}

// drain yields the matching lines of a single source.
// It returns false when the sequence must stop.
func drain(ctx context.Context, src source.Source, filters *filter.Chain, stats *monitor.Stats, yield func(line.Line, error) bool) bool {
	rc, err := src.Open()
	if err != nil {
		var openErr *source.OpenError
		if !errors.As(err, &openErr) {
			err = &source.OpenError{Source: src.Name(), Err: err}
		}
		yield(line.Line{}, err)
		return false
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logrus.WithError(err).Debugf("close %s", src.Name())
		}
	}()

	stats.RecordSource()
	logrus.Debugf("reading %s", src.Name())

	for l, err := range source.Lines(rc, src.Name()) {
		if err != nil {
			yield(line.Line{}, err)
			return false
		}
		if err := ctx.Err(); err != nil {
			yield(line.Line{}, err)
			return false
		}

		stats.RecordLine()
		if filters != nil && !filters.Match(&l) {
			continue
		}
		stats.RecordMatch()
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			logrus.Trace("match " + l.Format())
		}

		if !yield(l, nil) {
			return false
		}
	}
	return true
}

// Run executes the pipeline: reads from sources, filters, and writes to sinks.
// Sinks are flushed and closed before Run returns, including on error, so
// lines matched before a failure are always written.
func Run(ctx context.Context, cfg *Config) (err error) {
	if len(cfg.Sources) == 0 {
		return errors.New("pipeline: at least one source is required")
	}
	if len(cfg.Sinks) == 0 {
		return errors.New("pipeline: at least one sink is required")
	}
	if cfg.Stats == nil {
		cfg.Stats = monitor.NewStats()
	}
	if cfg.Filters != nil {
		logrus.Debugf("filter: %s", cfg.Filters.Name())
	}

	defer func() {
		for _, s := range cfg.Sinks {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("pipeline: close %s: %w", s.Name(), cerr)
			}
		}
		logrus.Debug(cfg.Stats.Summary())
	}()

	for l, merr := range Matches(ctx, cfg) {
		if merr != nil {
			return fmt.Errorf("pipeline: %w", merr)
		}
		for _, s := range cfg.Sinks {
			if werr := s.Write(&l); werr != nil {
				return fmt.Errorf("pipeline: write to %s: %w", s.Name(), werr)
			}
		}
	}

	return nil
}
