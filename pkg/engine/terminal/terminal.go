// Package terminal queries the terminal size and writes the few ANSI control
// sequences the text clients need.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin and stdout are both attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ClearScreen erases the screen and homes the cursor
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}

// MoveTo places the cursor at zero-based column x, row y
func MoveTo(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", y+1, x+1)
}

// ClearToEOL erases from the cursor to the end of the line
func ClearToEOL(w io.Writer) {
	fmt.Fprint(w, "\x1b[K")
}

// HideCursor hides the cursor
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\x1b[?25l")
}

// ShowCursor shows the cursor again
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\x1b[?25h")
}
