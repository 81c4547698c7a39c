package levelgen

import (
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// BossStyle selects the room a boss is placed in.
type BossStyle int

const (
	BossLargest  BossStyle = iota // room with the largest area
	BossFarthest                  // room farthest from the first exit
	BossRandom
)

// BossPlacement picks a room by style, puts the boss on its free tile
// nearest the centre and up to chaos escorts on the next free tiles. A
// creature only goes where it leaves every walkable tile reachable on foot,
// and at least one tile of the room stays free. It panics if the chunk has
// no rooms.
func BossPlacement(c *chunk.Chunk, style BossStyle) chunk.Room {
	if len(c.Rooms) == 0 {
		panic("levelgen: BossPlacement on a chunk without rooms")
	}

	var room chunk.Room
	switch style {
	case BossFarthest:
		room = farthestRoom(c)
	case BossRandom:
		room = c.Room(c.Seed().Roll(0, len(c.Rooms)-1))
	default:
		room = c.Rooms[0]
		for _, r := range c.Rooms[1:] {
			if r.Area() > room.Area() {
				room = r
			}
		}
	}

	tiles := roomTiles(c, room)
	want := []tile.Entity{tile.Boss}
	for i := 0; i < c.Config.Chaos; i++ {
		want = append(want, tile.Escorts[i%len(tile.Escorts)])
	}
	placed := 0
	for _, p := range tiles {
		if placed == len(want) || placed+1 >= len(tiles) {
			break
		}
		if !c.KeepsWalkable(p.X, p.Y) {
			continue
		}
		c.Place(p.X, p.Y, want[placed])
		placed++
	}
	return room
}

// farthestRoom returns the room whose nearest reachable tile is farthest
// from the first exit by walking distance
func farthestRoom(c *chunk.Chunk) chunk.Room {
	a, ok := c.Anchor()
	if !ok {
		return c.Rooms[0]
	}
	dist := c.Distances(a.X, a.Y)
	best, bestDist := c.Rooms[0], -1
	for _, r := range c.Rooms {
		nearest := -1
		for y := r.Y1; y <= r.Y2; y++ {
			for x := r.X1; x <= r.X2; x++ {
				if d := dist[c.Index(x, y)]; d >= 0 && (nearest < 0 || d < nearest) {
					nearest = d
				}
			}
		}
		if nearest > bestDist {
			best, bestDist = r, nearest
		}
	}
	return best
}
