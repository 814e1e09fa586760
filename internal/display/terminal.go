package display

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// fallbackWidth applies when stdout is not a terminal, the usual case
// when output is piped into a pager or a file.
const fallbackWidth = 80

// TerminalWidth returns the width of the terminal attached to stdout,
// or fallbackWidth when there is none.
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
