package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Session reads single key presses from a terminal held in raw mode.
type Session struct {
	in       io.Reader
	fd       int
	oldState *term.State
}

// OpenRaw puts stdin into raw mode until Close is called.
func OpenRaw() (*Session, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &Session{in: os.Stdin, fd: fd, oldState: oldState}, nil
}

// NewSession reads keys from r without touching any terminal state.
func NewSession(r io.Reader) *Session {
	return &Session{in: r, fd: -1}
}

// Close restores the terminal state saved by OpenRaw
func (s *Session) Close() error {
	if s.oldState == nil {
		return nil
	}
	return term.Restore(s.fd, s.oldState)
}

// ReadKey blocks until a key is pressed and returns its code, e.g. "q",
// "arrow_up" or "escape".
func (s *Session) ReadKey() (string, error) {
	// A whole escape sequence arrives in one read, which is what tells a
	// lone ESC apart from an arrow key.
	buf := make([]byte, 8)
	for {
		n, err := s.in.Read(buf)
		if n > 0 {
			if code := ParseKey(buf[:n]); code != "" {
				return code, nil
			}
		}
		if err != nil {
			return "", err
		}
	}
}

// ReadRaw reads a key and wraps it as a terminal RawInput
func (s *Session) ReadRaw() (RawInput, error) {
	code, err := s.ReadKey()
	if err != nil {
		return RawInput{}, err
	}
	return NewRawInput(DeviceTerminal, code), nil
}

// ParseKey maps the bytes of one terminal read to a key code. Unknown escape
// sequences map to "".
func ParseKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if b[0] != 0x1b {
		switch c := b[0]; {
		case c == 3:
			return "ctrl_c"
		case c == '\r' || c == '\n':
			return "enter"
		case c >= 32 && c < 127:
			return string(c)
		}
		return ""
	}
	if len(b) == 1 {
		return "escape"
	}

	// Both CSI (ESC [) and SS3 (ESC O) forms are sent for arrows.
	if len(b) >= 3 && (b[1] == '[' || b[1] == 'O') {
		switch b[2] {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
	}
	return ""
}
