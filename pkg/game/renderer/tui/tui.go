// Package tui draws chunks and frames to a terminal with ANSI colours.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"chunky/pkg/engine/terminal"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/gameplay"
	"chunky/pkg/game/renderer"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	plain  bool
	styles map[renderer.TextStyle]color.Style

	// Raw-mode terminals need an explicit carriage return.
	newline string
}

// New creates a TUI renderer writing coloured output to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out, newline: "\r\n"}
}

// NewPlain creates a renderer that writes glyphs without colour codes and
// ends lines with a bare newline
func NewPlain(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out, plain: true, newline: "\n"}
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleNormal: {},
		renderer.StyleDoor:   {color.FgCyan},
		renderer.StyleChest:  {color.FgYellow, color.OpBold},
		renderer.StyleSacred: {color.FgBlue, color.OpBold},
		renderer.StyleNature: {color.FgGreen},
		renderer.StyleHazard: {color.FgMagenta},
		renderer.StyleEntity: {color.FgRed, color.OpBold},
		renderer.StylePlayer: {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleSubtle: {color.FgGray},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.ClearScreen(t.out)
}

// StyleText applies a style to text and returns the styled string
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.plain || t.styles == nil {
		return text
	}
	s, ok := t.styles[style]
	if !ok || len(s) == 0 {
		return text
	}
	return s.Sprint(text)
}

// cellRow renders frame row y, emitting one colour run per style change.
func (t *TUIRenderer) cellRow(f *renderer.Frame, y int) string {
	var sb strings.Builder
	var run []rune
	style := renderer.StyleNormal
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(t.StyleText(string(run), style))
			run = run[:0]
		}
	}
	for x := 0; x < f.Width; x++ {
		c := f.At(x, y)
		if c.Style != style {
			flush()
			style = c.Style
		}
		run = append(run, c.Glyph)
	}
	flush()
	return sb.String()
}

// RenderFrame redraws the whole frame from the top-left corner
func (t *TUIRenderer) RenderFrame(f renderer.Frame) {
	var sb strings.Builder
	terminal.MoveTo(&sb, 0, 0)
	for y := 0; y < f.Height; y++ {
		sb.WriteString(t.cellRow(&f, y))
		terminal.ClearToEOL(&sb)
		sb.WriteString(t.newline)
	}
	for _, line := range []string{f.Status, f.Message, f.Help} {
		sb.WriteString(t.StyleText(line, renderer.StyleSubtle))
		terminal.ClearToEOL(&sb)
		sb.WriteString(t.newline)
	}
	io.WriteString(t.out, sb.String())
}

// WriteFrame prints the frame's map rows only, one line each
func (t *TUIRenderer) WriteFrame(f renderer.Frame) {
	for y := 0; y < f.Height; y++ {
		fmt.Fprint(t.out, t.cellRow(&f, y), t.newline)
	}
}

// WriteChunk prints every tile of c
func (t *TUIRenderer) WriteChunk(c *chunk.Chunk) {
	t.WriteFrame(renderer.BuildFrame(gameplay.ChunkTerrain{C: c}, renderer.FrameSpec{Width: c.Width, Height: c.Height}))
}

// WriteRoom prints the tiles of room r's bounding box in c
func (t *TUIRenderer) WriteRoom(c *chunk.Chunk, r chunk.Room) {
	t.WriteFrame(renderer.BuildFrame(gameplay.ChunkTerrain{C: c}, renderer.FrameSpec{
		OriginX: r.X1,
		OriginY: r.Y1,
		Width:   r.Width(),
		Height:  r.Height(),
	}))
}
