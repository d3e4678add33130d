package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// minFitWidth keeps fitted output readable on very narrow terminals.
const minFitWidth = 20

// TerminalWidth returns the current terminal width in columns, or the
// fallback when stdout is not a terminal or the size cannot be read.
func TerminalWidth(fallback int) int {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// FitWidth adjusts a requested render width to the terminal, leaving a
// two-column margin so lines never wrap. With fit disabled the request
// passes through unchanged.
func FitWidth(requested int, fit bool) int {
	if !fit {
		return requested
	}
	w := TerminalWidth(80) - 2
	if w < minFitWidth {
		w = minFitWidth
	}
	return w
}
