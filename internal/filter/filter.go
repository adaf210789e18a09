// Package filter defines the Filter interface and Chain for line filtering.
package filter

import (
	"strings"

	"github.com/Geun-Oh/wutils/internal/line"
)

// Filter determines whether a Line matches a filtering criterion.
type Filter interface {
	// Match returns true if the line passes this filter.
	Match(l *line.Line) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// Chain passes a line only if every filter in it matches.
type Chain struct {
	filters []Filter
}

// NewChain creates a Chain of the given filters.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match evaluates the chain against a line.
// Returns true if no filters are configured (pass-through).
func (c *Chain) Match(l *line.Line) bool {
	for _, f := range c.filters {
		if !f.Match(l) {
			return false
		}
	}
	return true
}

// Name returns a description of the chain and its filters.
func (c *Chain) Name() string {
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}
	return "chain[" + strings.Join(names, ",") + "]"
}
