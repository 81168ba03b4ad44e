// Package termsize reports the display width available to the CLI.
package termsize

import (
	"io"
	"os"
	"strconv"
)

// Fallback is the width used when nothing better is known.
const Fallback = 80

type fder interface {
	Fd() uintptr
}

// Width returns the column count of the terminal behind w. The second result
// is false when w is not a terminal.
func Width(w io.Writer) (int, bool) {
	f, ok := w.(fder)
	if !ok {
		return 0, false
	}
	cols, err := columns(f.Fd())
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f *os.File) bool {
	_, ok := Width(f)
	return ok
}

// Resolve picks the layout width, in order: a positive override, the
// terminal behind w, a positive $COLUMNS, Fallback.
func Resolve(override int, w io.Writer) int {
	if override > 0 {
		return override
	}
	if cols, ok := Width(w); ok {
		return cols
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return Fallback
}
