// Package ebiten provides an Ebiten-based 2D graphical renderer for the chunk
// clients.
package ebiten

import (
	"image/color"

	"chunky/pkg/game/renderer"
)

// Color palette
var (
	colorBackground = color.RGBA{15, 15, 26, 255}
	colorWallBg     = color.RGBA{60, 60, 80, 255}
	colorText       = color.RGBA{200, 210, 245, 255}
	colorSubtle     = color.RGBA{120, 130, 180, 255}

	styleColors = map[renderer.TextStyle]color.RGBA{
		renderer.StyleNormal: {180, 180, 200, 255},
		renderer.StyleDoor:   {0, 220, 220, 255},
		renderer.StyleChest:  {255, 220, 0, 255},
		renderer.StyleSacred: {100, 150, 255, 255},
		renderer.StyleNature: {0, 200, 80, 255},
		renderer.StyleHazard: {255, 150, 255, 255},
		renderer.StyleEntity: {255, 80, 80, 255},
		renderer.StylePlayer: {0, 255, 0, 255},
		renderer.StyleSubtle: {120, 130, 180, 255},
	}
)

// Tile size and layout
const (
	defaultTileSize = 20
	statusLines     = 3
	baseFontSize    = 16.0 // font size at the default tile size
)

const (
	keyRepeatInitialDelay = 300 // milliseconds before a held key repeats
	keyRepeatInterval     = 80  // milliseconds between repeats
)

// styleColor returns the foreground colour of a style.
func styleColor(s renderer.TextStyle) color.RGBA {
	if c, ok := styleColors[s]; ok {
		return c
	}
	return colorText
}
