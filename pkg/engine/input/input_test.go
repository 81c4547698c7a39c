package input

import (
	"bytes"
	"io"
	"testing"

	"chunky/pkg/engine/world"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x1b, '[', 'A'}, "arrow_up"},
		{[]byte{0x1b, 'O', 'B'}, "arrow_down"},
		{[]byte{0x1b, '[', 'C'}, "arrow_right"},
		{[]byte{0x1b, '[', 'D'}, "arrow_left"},
		{[]byte{0x1b}, "escape"},
		{[]byte{0x1b, '[', 'Z'}, ""},
		{[]byte{'q'}, "q"},
		{[]byte{'Q'}, "Q"},
		{[]byte{3}, "ctrl_c"},
		{[]byte{'\r'}, "enter"},
		{[]byte{0x7f}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := ParseKey(tt.in); got != tt.want {
			t.Errorf("ParseKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// chunkedReader returns one chunk per Read call, like a terminal in raw mode.
type chunkedReader struct {
	chunks [][]byte
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestSession_ReadKey(t *testing.T) {
	s := NewSession(&chunkedReader{chunks: [][]byte{
		{0x1b, '[', 'A'},
		{0x7f},
		{'q'},
	}})
	for _, want := range []string{"arrow_up", "q"} {
		got, err := s.ReadKey()
		if err != nil || got != want {
			t.Fatalf("ReadKey() = %q, %v, want %q", got, err, want)
		}
	}
	if _, err := s.ReadKey(); err != io.EOF {
		t.Errorf("ReadKey() at end = %v, want EOF", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on a plain reader = %v", err)
	}
}

func TestSession_ReadRaw(t *testing.T) {
	s := NewSession(bytes.NewReader([]byte{'k'}))
	raw, err := s.ReadRaw()
	if err != nil {
		t.Fatalf("ReadRaw() = %v", err)
	}
	if raw.Device != DeviceTerminal || raw.Code != "k" || raw.Timestamp.IsZero() {
		t.Errorf("ReadRaw() = %+v", raw)
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"j", ActionMoveSouth},
		{"arrow_left", ActionMoveWest},
		{"l", ActionMoveEast},
		{"q", ActionQuit},
		{"Q", ActionQuit},
		{"escape", ActionQuit},
		{"m", ActionDumpMap},
		{"x", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: tt.code}))
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestIntentDirection(t *testing.T) {
	if d, ok := (Intent{Action: ActionMoveWest}).Direction(); !ok || d != world.West {
		t.Errorf("Direction() = %v, %v, want West", d, ok)
	}
	if _, ok := (Intent{Action: ActionQuit}).Direction(); ok {
		t.Error("quit intent has a direction")
	}
}
