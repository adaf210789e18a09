package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Geun-Oh/wutils/internal/cli"
	"github.com/Geun-Oh/wutils/internal/core"
	"github.com/Geun-Oh/wutils/internal/logging"
	"github.com/Geun-Oh/wutils/internal/source"
)

const usage = "wgrep: searchterm [file ...]"

func newRootCmd() *cobra.Command {
	return cli.NewCommand(
		"wgrep searchterm [file ...]",
		"wgrep prints the lines that contain a search term",
		`wgrep prints every line of the given files that contains searchterm.
The term is matched literally, lines are printed unmodified and in order.
With no files, wgrep reads standard input. An empty searchterm matches every line.
wgrep takes no options: every argument, including ones starting with "-",
is a search term or a file. Set WUTILS_DEBUG=1 to log to stderr.`,
		func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return core.ErrMissingArgument
			}
			return nil
		},
		func(cmd *cobra.Command, args []string) error {
			return core.Grep(cmd.Context(), args[0], args[1:], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	)
}

// run executes wgrep and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logging.Setup(stderr, logging.DebugFromEnv())

	rootCmd := newRootCmd()
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := cli.Execute(ctx, rootCmd, args)
	if err == nil {
		return 0
	}

	var openErr *source.OpenError
	switch {
	case errors.Is(err, core.ErrMissingArgument):
		fmt.Fprintln(stdout, usage)
	case errors.As(err, &openErr):
		logrus.WithError(openErr.Err).Debugf("cannot open %s", openErr.Source)
		fmt.Fprintf(stdout, "wgrep: cannot open file %s\n", openErr.Target())
	default:
		fmt.Fprintf(stdout, "wgrep: %v\n", err)
	}
	return 1
}
