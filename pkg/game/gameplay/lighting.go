package gameplay

import (
	"chunky/pkg/engine/world"
	"chunky/pkg/game/tile"
)

// BlocksSight reports tiles that stop the field of view: rock, walls and
// doors that are not open.
func BlocksSight(t tile.Tile) bool {
	return !Walkable(t) && !t.IsFeature()
}

// Fog remembers which tiles the player has seen.
type Fog struct {
	discovered world.Grid[bool]
	radius     int
	Disabled   bool // when set every tile counts as discovered
}

// NewFog returns a fog covering a width x height tile map with nothing seen.
func NewFog(width, height int) *Fog {
	return &Fog{
		discovered: world.NewGrid(width, height, false),
		radius:     world.FOVRadius,
	}
}

// Reveal marks the tiles visible from (x, y) over m as discovered.
func (f *Fog) Reveal(m Terrain, x, y int) {
	blocks := func(x, y int) bool { return BlocksSight(m.Tile(x, y)) }
	world.RevealFOV(&f.discovered, blocks, x, y, f.radius)
}

// Discovered reports whether (x, y) has been seen. Positions outside the fog
// are never discovered.
func (f *Fog) Discovered(x, y int) bool {
	if f.Disabled {
		return true
	}
	return f.discovered.IsValidPosition(x, y) && f.discovered.Get(x, y)
}

// Toggle flips Disabled.
func (f *Fog) Toggle() {
	f.Disabled = !f.Disabled
}
