// Package monitor collects processing statistics for the pipeline.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects pipeline processing metrics in a lock-free manner.
type Stats struct {
	sources      atomic.Uint64
	totalLines   atomic.Uint64
	matchedLines atomic.Uint64
	startTime    time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// RecordSource increments the opened source counter.
func (s *Stats) RecordSource() {
	s.sources.Add(1)
}

// RecordLine increments the total line counter.
func (s *Stats) RecordLine() {
	s.totalLines.Add(1)
}

// RecordMatch increments the matched line counter.
func (s *Stats) RecordMatch() {
	s.matchedLines.Add(1)
}

// Sources returns the number of sources opened so far.
func (s *Stats) Sources() uint64 {
	return s.sources.Load()
}

// Total returns the total number of processed lines.
func (s *Stats) Total() uint64 {
	return s.totalLines.Load()
}

// Matched returns the total number of matched lines.
func (s *Stats) Matched() uint64 {
	return s.matchedLines.Load()
}

// Elapsed returns the time since monitoring started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Summary returns a one-line summary suitable for a log message.
func (s *Stats) Summary() string {
	total := s.Total()
	matched := s.Matched()

	matchRate := float64(0)
	if total > 0 {
		matchRate = float64(matched) / float64(total) * 100
	}

	return fmt.Sprintf("sources=%d lines=%d matched=%d (%.1f%%) duration=%s",
		s.Sources(), total, matched, matchRate,
		s.Elapsed().Round(time.Millisecond),
	)
}
