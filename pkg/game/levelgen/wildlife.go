package levelgen

import (
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

var (
	hazardTiles = []tile.Tile{tile.Sentinel, tile.Turret, tile.Totem, tile.Trap}
	natureTiles = []tile.Tile{tile.Shrub, tile.HiddenGrove, tile.Altar, tile.Shrine}
)

// Wildlife scatters hazards, nature features and wild creatures over the
// corridors, keeping clear of exits and door approaches. A tile is only
// taken when every walkable tile stays reachable on foot. It returns the
// number of tiles populated.
func Wildlife(c *chunk.Chunk) int {
	s := c.Seed()
	hazard := 8 + 4*c.Config.Chaos
	nature := 6 + 4*c.Config.Openness
	wild := 4 + 2*c.Config.Chaos

	placed := 0
	c.ForEach(func(x, y int, t tile.Tile) {
		if t != tile.Empty || c.InAnyRoom(x, y) || c.IsExit(x, y) ||
			c.EntityAt(x, y) != tile.None || nextToDoor(c, x, y) {
			return
		}
		var feature tile.Tile
		creature := false
		switch {
		case s.Chance(hazard):
			feature = hazardTiles[s.Roll(0, len(hazardTiles)-1)]
		case s.Chance(nature):
			feature = natureTiles[s.Roll(0, len(natureTiles)-1)]
		case s.Chance(wild):
			creature = true
		default:
			return
		}
		if !c.KeepsWalkable(x, y) {
			return
		}
		if creature {
			c.Place(x, y, tile.Wild)
		} else {
			c.Build(x, y, feature)
		}
		placed++
	})
	return placed
}
