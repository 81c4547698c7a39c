// Package levelgen populates a structurally complete chunk: the boss room and
// its escort, hardened entrances, wildlife and treasure.
package levelgen

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// isFree reports a floor tile that carries nothing and is not an exit
func isFree(c *chunk.Chunk, x, y int) bool {
	return c.At(x, y).IsFloor() && c.EntityAt(x, y) == tile.None && !c.IsExit(x, y)
}

// roomTiles returns the free tiles whose innermost room is r, nearest the centre first
func roomTiles(c *chunk.Chunk, r chunk.Room) []world.Coords {
	cx, cy := r.Center()
	var tiles []world.Coords
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if inner, ok := c.RoomAt(x, y); ok && inner.Index == r.Index && isFree(c, x, y) {
				tiles = append(tiles, world.Coords{X: x, Y: y})
			}
		}
	}
	sort.SliceStable(tiles, func(i, j int) bool {
		return ManhattanDistance(tiles[i], cx, cy) < ManhattanDistance(tiles[j], cx, cy)
	})
	return tiles
}

// ManhattanDistance returns the grid distance between p and (x, y)
func ManhattanDistance(p world.Coords, x, y int) int {
	dx, dy := p.X-x, p.Y-y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// MainPath returns the union of shortest paths from the first exit to every
// other exit
func MainPath(c *chunk.Chunk) mapset.Set[world.Coords] {
	path := mapset.New[world.Coords]()
	if len(c.Exits) == 0 {
		return path
	}
	start := world.Coords{X: c.Exits[0].X, Y: c.Exits[0].Y}
	path.Put(start)
	for _, e := range c.Exits[1:] {
		for _, p := range c.Path(start, world.Coords{X: e.X, Y: e.Y}) {
			path.Put(p)
		}
	}
	return path
}

// nextToDoor reports whether a 4-neighbour of (x, y) is a door
func nextToDoor(c *chunk.Chunk, x, y int) bool {
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		if c.At(x+dx, y+dy).IsDoor() {
			return true
		}
	}
	return false
}

// Populate runs boss placement, room protection, wildlife and chests on a
// connected chunk, marks it populated, self-tests it, and returns the boss
// room.
func Populate(c *chunk.Chunk) chunk.Room {
	boss := BossPlacement(c, BossLargest)
	ProtectRoom(c, boss)
	Wildlife(c)
	Chest(c, boss)
	c.MarkPopulated()
	c.SelfTest()
	return boss
}
