package generator

import (
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// Beautify scatters cosmetic variants: damaged walls, debris in rooms and
// rails in corridors. Exits, doors, features and tiles holding an entity are
// never touched, and a tile keeps its floor or wall class.
func Beautify(c *chunk.Chunk) {
	s := c.Seed()
	damaged := 40 + 30*c.Config.Chaos
	debris := 15 + 10*c.Config.Chaos
	rail := 10 * c.Config.Openness

	c.ForEach(func(x, y int, t tile.Tile) {
		if c.IsExit(x, y) || c.EntityAt(x, y) != tile.None {
			return
		}
		switch {
		case t == tile.Wall:
			if s.Chance(damaged) {
				c.Build(x, y, tile.WallDamaged)
			}
		case t == tile.Empty && c.InAnyRoom(x, y):
			if s.Chance(debris) {
				c.Build(x, y, tile.Debris)
			}
		case t == tile.Empty:
			if s.Chance(rail) {
				c.Build(x, y, tile.Rail)
			}
		}
	})
}
