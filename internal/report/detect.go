package report

import (
	"os"

	"golang.org/x/term"
)

// UseStyle reports whether output to f should carry colors and borders.
//
// Styling is off when NO_COLOR is set, CI is set, TERM is "dumb" or f is not
// a terminal.
func UseStyle(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
