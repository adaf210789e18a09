package filter

import (
	"bytes"

	"github.com/Geun-Oh/wutils/internal/line"
)

// KeywordFilter matches lines containing a literal keyword.
// The test runs on the raw line bytes, so nothing is copied per line.
// An empty keyword matches every line.
type KeywordFilter struct {
	keyword []byte
}

// NewKeywordFilter creates a filter that matches lines containing the keyword.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: []byte(keyword)}
}

// Match returns true if the raw line contains the keyword.
func (f *KeywordFilter) Match(l *line.Line) bool {
	return bytes.Contains(l.Raw, f.keyword)
}

// Name returns the filter description.
func (f *KeywordFilter) Name() string {
	return "keyword:" + string(f.keyword)
}
