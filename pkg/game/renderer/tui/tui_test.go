package tui

import (
	"bytes"
	"strings"
	"testing"

	"chunky/pkg/engine/rng"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/renderer"
	"chunky/pkg/game/tile"
)

func smallChunk(t *testing.T) *chunk.Chunk {
	t.Helper()
	cfg := chunk.DefaultConfig(rng.New(1))
	cfg.Width, cfg.Height = 16, 8
	c := chunk.New(cfg)
	for x := 2; x <= 5; x++ {
		c.Build(x, 2, tile.Wall)
		c.Build(x, 3, tile.Empty)
		c.Build(x, 4, tile.Wall)
	}
	c.Build(5, 3, tile.DoorClosed)
	c.Place(3, 3, tile.Boss)
	return c
}

func TestWriteChunk_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.Init()
	r.WriteChunk(smallChunk(t))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("WriteChunk wrote %d lines, want 8", len(lines))
	}
	if got, want := lines[3], "  .B.+          "; got != want {
		t.Errorf("line 3 = %q, want %q", got, want)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("plain output contains escape codes")
	}
}

func TestWriteRoom(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.WriteRoom(smallChunk(t), chunk.Room{X1: 2, Y1: 2, X2: 5, Y2: 4})
	if got, want := buf.String(), "####\n.B.+\n####\n"; got != want {
		t.Errorf("WriteRoom output = %q, want %q", got, want)
	}
}

func TestStyleText(t *testing.T) {
	r := New(&bytes.Buffer{})
	if got := r.StyleText("x", renderer.StyleDoor); got != "x" {
		t.Errorf("StyleText before Init = %q, want %q", got, "x")
	}
	r.Init()
	if got := r.StyleText("x", renderer.StyleNormal); got != "x" {
		t.Errorf("StyleText(normal) = %q, want %q", got, "x")
	}
	if got := NewPlain(&bytes.Buffer{}).StyleText("x", renderer.StyleEntity); got != "x" {
		t.Errorf("plain StyleText = %q, want %q", got, "x")
	}
}

func TestRenderFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.Init()
	r.RenderFrame(renderer.Frame{
		Width:  2,
		Height: 1,
		Cells:  []renderer.Cell{{Glyph: '@', Style: renderer.StylePlayer}, {Glyph: '.'}},
		Status: "seed 1",
	})
	want := "\x1b[1;1H@.\x1b[K\nseed 1\x1b[K\n\x1b[K\n\x1b[K\n"
	if got := buf.String(); got != want {
		t.Errorf("RenderFrame output = %q, want %q", got, want)
	}
}
