package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chunky/pkg/game/renderer"
)

// Draw renders the current frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.monoFace == nil {
		return
	}

	e.frameMutex.RLock()
	f := e.frame
	e.frameMutex.RUnlock()

	for y := 0; y < f.Height && y < e.rows; y++ {
		for x := 0; x < f.Width && x < e.cols; x++ {
			e.drawCell(screen, f.At(x, y), x*e.tileSize, y*e.tileSize)
		}
	}

	top := e.rows * e.tileSize
	for i, line := range []string{f.Status, f.Message, f.Help} {
		col := colorText
		if i > 0 {
			col = colorSubtle
		}
		e.drawText(screen, line, 4, top+i*e.tileSize, col)
	}
}

// drawCell draws one map cell with a block background behind walls
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, c renderer.Cell, x, y int) {
	if c.Glyph == ' ' || c.Glyph == 0 {
		return
	}
	if c.Glyph == '#' && c.Style == renderer.StyleNormal {
		margin := float32(1)
		vector.DrawFilledRect(screen, float32(x)+margin, float32(y)+margin,
			float32(e.tileSize)-margin*2, float32(e.tileSize)-margin*2,
			colorWallBg, false)
	}
	e.drawColoredChar(screen, string(c.Glyph), x, y, styleColor(c.Style))
}

// drawColoredChar draws a character centred in the tile at (x, y)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	w, h := text.Measure(char, e.monoFace, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+offsetX, float64(y)+offsetY)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, char, e.monoFace, op)
}

// drawText draws a status line with its top-left corner at (x, y)
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.monoFace, op)
}
