package levelgen

import (
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// Chest hides one chest in each of up to 1+openness/2 side rooms, never in
// the boss room, never on the main path between exits and never where it
// would cut off a walkable tile. It returns the number of chests placed.
func Chest(c *chunk.Chunk, boss chunk.Room) int {
	s := c.Seed()
	mainPath := MainPath(c)

	var rooms []chunk.Room
	for _, r := range c.Rooms {
		if r.Index != boss.Index {
			rooms = append(rooms, r)
		}
	}
	s.Shuffle(len(rooms), func(i, j int) { rooms[i], rooms[j] = rooms[j], rooms[i] })

	want := 1 + c.Config.Openness/2
	placed := 0
	for _, r := range rooms {
		if placed == want {
			break
		}
		var spots []world.Coords
		for _, p := range roomTiles(c, r) {
			if c.At(p.X, p.Y) == tile.Empty && !mainPath.Has(p) && c.KeepsWalkable(p.X, p.Y) {
				spots = append(spots, p)
			}
		}
		if len(spots) == 0 {
			continue
		}
		p := spots[s.Roll(0, len(spots)-1)]
		c.Build(p.X, p.Y, tile.Chest)
		placed++
	}
	return placed
}
