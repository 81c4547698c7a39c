package levelgen

import (
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// ProtectRoom hardens every entrance of r: doors on its ring are closed,
// open 1-wide doorways get a closed door, and a sentinel is posted just
// inside. The sentinel stands in the entrance only when the room can still be
// walked into around it; otherwise it flanks the entrance, or is left out.
// A sentinel never takes the room's last free tile.
// It returns the number of entrances hardened.
func ProtectRoom(c *chunk.Chunk, r chunk.Room) int {
	hardened := 0
	for _, rt := range r.Ring() {
		if !c.At(rt.X, rt.Y).IsDoor() && !c.IsDoorway(rt) {
			continue
		}
		if c.EntityAt(rt.X, rt.Y) != tile.None {
			continue
		}
		c.Build(rt.X, rt.Y, tile.DoorClosed)
		hardened++

		if len(roomTiles(c, r)) < 2 {
			continue
		}
		for _, p := range guardPosts(rt) {
			if r.Contains(p.X, p.Y) && isFree(c, p.X, p.Y) && c.KeepsWalkable(p.X, p.Y) {
				c.Build(p.X, p.Y, tile.Sentinel)
				break
			}
		}
	}
	return hardened
}

// guardPosts lists the tile just inside an entrance, then the two beside it
func guardPosts(rt chunk.RingTile) []world.Coords {
	dx, dy := rt.Outward.Delta()
	x, y := rt.X-dx, rt.Y-dy
	if rt.Outward.Horizontal() {
		return []world.Coords{{X: x, Y: y}, {X: x, Y: y - 1}, {X: x, Y: y + 1}}
	}
	return []world.Coords{{X: x, Y: y}, {X: x - 1, Y: y}, {X: x + 1, Y: y}}
}
