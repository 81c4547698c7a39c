// Package renderer maps terrain and entities to glyphs and colour classes and
// assembles backend-independent frames for the tui and ebiten renderers.
package renderer

import (
	"chunky/pkg/game/tile"
)

// PlayerIcon marks the player
const PlayerIcon = '@'

var tileGlyphs = [tile.Count]rune{
	tile.Rock:         ' ',
	tile.Empty:        '.',
	tile.Wall:         '#',
	tile.WallDamaged:  '#',
	tile.Debris:       '*',
	tile.Rail:         '.',
	tile.DoorOpen:     '\'',
	tile.DoorClosed:   '+',
	tile.OneWayTop:    '^',
	tile.OneWayBottom: 'v',
	tile.OneWayLeft:   '<',
	tile.OneWayRight:  '>',
	tile.Chest:        '&',
	tile.Altar:        'A',
	tile.Shrine:       'R',
	tile.HiddenGrove:  'G',
	tile.Shrub:        't',
	tile.Sentinel:     'S',
	tile.Turret:       'U',
	tile.Totem:        'I',
	tile.Trap:         '~',
}

var entityGlyphs = map[tile.Entity]rune{
	tile.Boss:       'B',
	tile.Leader:     'L',
	tile.Support:    's',
	tile.Tank:       'T',
	tile.Damage:     'd',
	tile.Specialist: 'P',
	tile.Wild:       'w',
}

// Glyph returns the character drawn for terrain t.
func Glyph(t tile.Tile) rune {
	if int(t) < tile.Count {
		return tileGlyphs[t]
	}
	return '?'
}

// EntityGlyph returns the character drawn for entity e; ' ' for None.
func EntityGlyph(e tile.Entity) rune {
	if g, ok := entityGlyphs[e]; ok {
		return g
	}
	return ' '
}

// TileStyle returns the colour class of terrain t.
func TileStyle(t tile.Tile) TextStyle {
	switch {
	case t.IsDoor():
		return StyleDoor
	case t == tile.Chest:
		return StyleChest
	case t == tile.Altar, t == tile.Shrine, t == tile.HiddenGrove, t == tile.Rail:
		return StyleSacred
	case t == tile.Shrub:
		return StyleNature
	case t.IsHazard():
		return StyleHazard
	}
	return StyleNormal
}

// Cell is one drawn map position.
type Cell struct {
	Glyph rune
	Style TextStyle
}

// Source is a tile map a frame is drawn from.
type Source interface {
	Tile(x, y int) tile.Tile
	Entity(x, y int) tile.Entity
}

// CellAt returns the cell for (x, y) of m; an entity hides the terrain under it.
func CellAt(m Source, x, y int) Cell {
	if e := m.Entity(x, y); e != tile.None {
		return Cell{Glyph: EntityGlyph(e), Style: StyleEntity}
	}
	t := m.Tile(x, y)
	return Cell{Glyph: Glyph(t), Style: TileStyle(t)}
}

// FrameSpec selects the window of a Source drawn into a frame.
type FrameSpec struct {
	OriginX, OriginY int // top-left tile of the window
	Width, Height    int

	// Visible hides undiscovered tiles when set.
	Visible func(x, y int) bool

	ShowPlayer       bool
	PlayerX, PlayerY int

	Status  string
	Message string
	Help    string
}

// Frame is a rectangle of cells with status lines, independent of the backend.
type Frame struct {
	Width, Height int
	Cells         []Cell

	Status  string
	Message string
	Help    string
}

// BuildFrame draws the window described by spec from m.
func BuildFrame(m Source, spec FrameSpec) Frame {
	f := Frame{
		Width:   spec.Width,
		Height:  spec.Height,
		Cells:   make([]Cell, spec.Width*spec.Height),
		Status:  spec.Status,
		Message: spec.Message,
		Help:    spec.Help,
	}
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			wx, wy := spec.OriginX+x, spec.OriginY+y
			cell := Cell{Glyph: ' ', Style: StyleNormal}
			switch {
			case spec.ShowPlayer && wx == spec.PlayerX && wy == spec.PlayerY:
				cell = Cell{Glyph: PlayerIcon, Style: StylePlayer}
			case spec.Visible == nil || spec.Visible(wx, wy):
				cell = CellAt(m, wx, wy)
			}
			f.Cells[y*spec.Width+x] = cell
		}
	}
	return f
}

// At returns the cell at frame position (x, y).
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// Row returns the glyphs of frame row y as a string.
func (f *Frame) Row(y int) string {
	runes := make([]rune, f.Width)
	for x := range runes {
		runes[x] = f.At(x, y).Glyph
	}
	return string(runes)
}
