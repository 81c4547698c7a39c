package generator

import (
	"github.com/zyedidia/generic/mapset"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// OneWayDoors converts up to count ordinary doors into one-way doors. A door
// is converted only if the chunk stays connected with it, and every door
// converted before it, treated as solid. It returns the number converted.
func OneWayDoors(c *chunk.Chunk, count int) int {
	if count <= 0 {
		return 0
	}
	s := c.Seed()

	var doors []world.Coords
	c.ForEach(func(x, y int, t tile.Tile) {
		if t == tile.DoorOpen || t == tile.DoorClosed {
			doors = append(doors, world.Coords{X: x, Y: y})
		}
	})
	s.Shuffle(len(doors), func(i, j int) { doors[i], doors[j] = doors[j], doors[i] })

	solid := mapset.New[world.Coords]()
	blocked := func(x, y int) bool { return solid.Has(world.Coords{X: x, Y: y}) }

	converted := 0
	for _, d := range doors {
		if converted == count {
			break
		}
		solid.Put(d)
		if !c.IsConnected(blocked) {
			solid.Remove(d)
			continue
		}
		c.Build(d.X, d.Y, oneWayTile(c, d, s.Roll(0, 1) == 0))
		converted++
	}
	return converted
}

// oneWayTile picks the one-way door matching the passage axis through d
func oneWayTile(c *chunk.Chunk, d world.Coords, forward bool) tile.Tile {
	eastWest := c.At(d.X-1, d.Y).Passable() || c.At(d.X+1, d.Y).Passable()
	northSouth := c.At(d.X, d.Y-1).Passable() || c.At(d.X, d.Y+1).Passable()
	if northSouth && !eastWest {
		if forward {
			return tile.OneWayTop
		}
		return tile.OneWayBottom
	}
	if forward {
		return tile.OneWayRight
	}
	return tile.OneWayLeft
}
