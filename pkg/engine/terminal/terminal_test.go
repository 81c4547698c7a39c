package terminal

import (
	"bytes"
	"testing"
)

func TestMoveTo(t *testing.T) {
	var buf bytes.Buffer
	MoveTo(&buf, 0, 0)
	MoveTo(&buf, 9, 4)
	if got, want := buf.String(), "\x1b[1;1H\x1b[5;10H"; got != want {
		t.Errorf("MoveTo output = %q, want %q", got, want)
	}
}

func TestCursorAndClear(t *testing.T) {
	var buf bytes.Buffer
	HideCursor(&buf)
	ClearScreen(&buf)
	ClearToEOL(&buf)
	ShowCursor(&buf)
	if got, want := buf.String(), "\x1b[?25l\x1b[2J\x1b[H\x1b[K\x1b[?25h"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive values", w, h)
	}
}
