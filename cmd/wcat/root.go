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

func newRootCmd() *cobra.Command {
	return cli.NewCommand(
		"wcat [file ...]",
		"wcat prints files to standard output",
		`wcat prints each given file to standard output, in order.
Nothing is printed when no files are given. Every argument is a file name.`,
		cobra.ArbitraryArgs,
		func(cmd *cobra.Command, args []string) error {
			return core.Cat(cmd.Context(), args, cmd.OutOrStdout())
		},
	)
}

// run executes wcat and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logging.Setup(stderr, logging.DebugFromEnv())

	rootCmd := newRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := cli.Execute(ctx, rootCmd, args)
	if err == nil {
		return 0
	}

	var openErr *source.OpenError
	if errors.As(err, &openErr) {
		logrus.WithError(openErr.Err).Debugf("cannot open %s", openErr.Source)
		fmt.Fprintf(stdout, "wcat: cannot open file %s\n", openErr.Target())
	} else {
		fmt.Fprintf(stdout, "wcat: %v\n", err)
	}
	return 1
}
