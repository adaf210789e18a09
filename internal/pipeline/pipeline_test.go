package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"

	"github.com/Geun-Oh/wutils/internal/filter"
	"github.com/Geun-Oh/wutils/internal/monitor"
	"github.com/Geun-Oh/wutils/internal/sink"
	"github.com/Geun-Oh/wutils/internal/source"
)

// fakeSource records how it is opened and closed.
type fakeSource struct {
	name    string
	content string
	openErr error
	opened  int
	closed  int
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Open() (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.opened++
	return &trackingCloser{Reader: strings.NewReader(s.content), src: s}, nil
}

type trackingCloser struct {
	io.Reader
	src *fakeSource
}

func (c *trackingCloser) Close() error {
	c.src.closed++
	return nil
}

func keyword(term string) *filter.Chain {
	return filter.NewChain(filter.NewKeywordFilter(term))
}

func run(t *testing.T, term string, sources ...source.Source) (string, *monitor.Stats, error) {
	t.Helper()
	var buf bytes.Buffer
	stats := monitor.NewStats()
	err := Run(context.Background(), &Config{
		Sources: sources,
		Filters: keyword(term),
		Sinks:   []sink.Sink{sink.NewWriterSink(&buf)},
		Stats:   stats,
	})
	return buf.String(), stats, err
}

func TestRunStdin(t *testing.T) {
	out, stats, err := run(t, "foo", source.NewStdinSource(strings.NewReader("foo\nbar\nfoobar\n")))
	require.NoError(t, err)
	assert.Equal(t, "foo\nfoobar\n", out)
	assert.Equal(t, uint64(3), stats.Total())
	assert.Equal(t, uint64(2), stats.Matched())
}

func TestRunMultipleFilesInOrder(t *testing.T) {
	dir := fs.NewDir(t, "pipeline",
		fs.WithFile("a.txt", "cat\n"),
		fs.WithFile("b.txt", "dog\ncatfish\n"),
	)
	defer dir.Remove()

	out, stats, err := run(t, "cat", source.FromPaths([]string{dir.Join("a.txt"), dir.Join("b.txt")})...)
	require.NoError(t, err)
	assert.Equal(t, "cat\ncatfish\n", out)
	assert.Equal(t, uint64(2), stats.Sources())
}

func TestRunEmptyTermMatchesEverything(t *testing.T) {
	input := "one\n\ntwo\nthree"
	out, _, err := run(t, "", source.NewStdinSource(strings.NewReader(input)))
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestRunNoMatches(t *testing.T) {
	out, stats, err := run(t, "zzz", source.NewStdinSource(strings.NewReader("a\nb\n")))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, uint64(0), stats.Matched())
}

func TestRunPreservesLineContent(t *testing.T) {
	input := "  tab\there \r\nplain\nlast match without newline"
	out, _, err := run(t, "e", source.NewStdinSource(strings.NewReader(input)))
	require.NoError(t, err)
	assert.Equal(t, "  tab\there \r\nlast match without newline", out)
}

func TestRunOpenFailureStopsProcessing(t *testing.T) {
	first := &fakeSource{name: "first", content: "cat\nx\n"}
	broken := &fakeSource{name: "broken", openErr: &source.OpenError{Source: "broken", Err: errors.New("denied")}}
	last := &fakeSource{name: "last", content: "cat\n"}

	out, _, err := run(t, "cat", first, broken, last)
	require.Error(t, err)

	var openErr *source.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, "broken", openErr.Source)

	assert.Equal(t, "cat\n", out, "lines from earlier sources are flushed")
	assert.Equal(t, 1, first.opened)
	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 0, last.opened, "sources after a failure are never opened")
}

func TestRunMissingFile(t *testing.T) {
	dir := fs.NewDir(t, "pipeline", fs.WithFile("b.txt", "cat\n"))
	defer dir.Remove()

	out, _, err := run(t, "cat", source.FromPaths([]string{dir.Join("missing.txt"), dir.Join("b.txt")})...)
	var openErr *source.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, "file:"+dir.Join("missing.txt"), openErr.Source)
	assert.Empty(t, out)
}

func TestMatchesWrapsPlainOpenErrors(t *testing.T) {
	src := &fakeSource{name: "plain", openErr: errors.New("nope")}

	var got error
	for _, err := range Matches(context.Background(), &Config{Sources: []source.Source{src}}) {
		got = err
	}
	var openErr *source.OpenError
	require.ErrorAs(t, got, &openErr)
	assert.Equal(t, "plain", openErr.Source)
}

func TestMatchesClosesSourceOnEarlyStop(t *testing.T) {
	src := &fakeSource{name: "s", content: "a\nb\nc\n"}

	for l, err := range Matches(context.Background(), &Config{Sources: []source.Source{src}}) {
		require.NoError(t, err)
		assert.Equal(t, "a\n", string(l.Raw))
		break
	}
	assert.Equal(t, 1, src.closed)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{name: "s", content: "a\n"}
	err := Run(ctx, &Config{
		Sources: []source.Source{src},
		Sinks:   []sink.Sink{sink.NewWriterSink(io.Discard)},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, src.opened)
}

func TestRunNilFiltersPassEverything(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), &Config{
		Sources: []source.Source{source.NewStdinSource(strings.NewReader("a\nb\n"))},
		Sinks:   []sink.Sink{sink.NewWriterSink(&buf)},
	})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestRunValidation(t *testing.T) {
	err := Run(context.Background(), &Config{Sinks: []sink.Sink{sink.NewWriterSink(io.Discard)}})
	assert.EqualError(t, err, "pipeline: at least one source is required")

	err = Run(context.Background(), &Config{Sources: []source.Source{&fakeSource{name: "s"}}})
	assert.EqualError(t, err, "pipeline: at least one sink is required")
}

func TestRunTraceLogsMatches(t *testing.T) {
	var logs bytes.Buffer
	logrus.SetOutput(&logs)
	logrus.SetLevel(logrus.TraceLevel)
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	}()

	out, _, err := run(t, "b", source.NewStdinSource(strings.NewReader("a\nb\n")))
	require.NoError(t, err)
	assert.Equal(t, "b\n", out)
	assert.Contains(t, logs.String(), "match [stdin:2]: b")
}
