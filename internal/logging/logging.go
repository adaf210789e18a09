// Package logging configures the logrus logger shared by the wutils commands.
//
// Diagnostics go to stderr only; stdout carries command output and nothing else.
package logging

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug logging when set to a true value ("1", "true", ...).
// The commands take no flags, so every argument stays available as input.
const DebugEnv = "WUTILS_DEBUG"

// DebugFromEnv reports whether DebugEnv is set to a true value.
func DebugFromEnv() bool {
	debug, _ := strconv.ParseBool(os.Getenv(DebugEnv))
	return debug
}

// Setup points the standard logrus logger at w.
// The level is Warn, or Debug when debug is set.
func Setup(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}
	logrus.SetOutput(w)

	logrus.SetLevel(logrus.WarnLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !IsTerminal(w),
		ForceColors:      isCygwin(w),
	})
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// the default formatter does not recognize cygwin terminals
func isCygwin(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsCygwinTerminal(f.Fd())
}
