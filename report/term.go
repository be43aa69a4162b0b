// SPDX-License-Identifier: MIT

package report

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Colorable reports whether w is a terminal that should receive ANSI colour,
// judged by IsTerminal and the process environment.
func Colorable(w io.Writer) bool {
	return IsTerminal(w) && colorEnv(os.LookupEnv)
}

// colorEnv applies the colour conventions to an environment: NO_COLOR wins,
// then CLICOLOR_FORCE, then CLICOLOR. Without any of those, colour stays on
// unless TERM names a terminal known to mangle escape codes.
func colorEnv(lookup func(string) (string, bool)) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if f, ok := lookup("CLICOLOR_FORCE"); ok && f != "0" {
		return true
	}
	if c, ok := lookup("CLICOLOR"); ok {
		return c != "0"
	}
	term, _ := lookup("TERM")
	switch term {
	case "dumb", "unknown", "linux":
		return false
	}

	return true
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
