package generator

import (
	"chunky/pkg/engine/rng"
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
)

// Edge seeds are keyed by the shared edge, so both chunks on either side of
// it place their exits on the same tiles.
const (
	edgeSaltVertical   = 0x45444756 // edge between (x-1, y) and (x, y)
	edgeSaltHorizontal = 0x45444748 // edge between (x, y-1) and (x, y)
)

const (
	exitCornerMargin = 2  // minimum distance of an exit from a corner
	exitSpacing      = 4  // minimum distance between exits on one edge
	wideEdge         = 32 // edges at least this long may carry two exits
)

// edgeSeed returns the stream shared by the chunk and its neighbour in dir
func edgeSeed(cfg chunk.Config, dir world.Direction) rng.Seed {
	level := cfg.LevelSeed()
	switch dir {
	case world.North:
		return level.Derive(edgeSaltHorizontal, cfg.X, cfg.Y)
	case world.South:
		return level.Derive(edgeSaltHorizontal, cfg.X, cfg.Y+1)
	case world.West:
		return level.Derive(edgeSaltVertical, cfg.X, cfg.Y)
	default:
		return level.Derive(edgeSaltVertical, cfg.X+1, cfg.Y)
	}
}

// edgePositions picks the offsets along an edge of the given length
func edgePositions(s *rng.Seed, length, openness int) []int {
	count := 1
	if length >= wideEdge && s.Roll(chunk.MinDial, chunk.MaxDial-1) < openness {
		count = 2
	}
	first := s.Roll(exitCornerMargin, length-1-exitCornerMargin)
	positions := []int{first}
	for attempt := 0; len(positions) < count && attempt < 16; attempt++ {
		p := s.Roll(exitCornerMargin, length-1-exitCornerMargin)
		if abs(p-first) >= exitSpacing {
			positions = append(positions, p)
		}
	}
	return positions
}

// GenerateExits places the chunk's exits on every edge shared with a chunk
// inside the level. A chunk without neighbours gets one interior anchor at
// its centre. It panics if the chunk already has exits.
func GenerateExits(c *chunk.Chunk) {
	if len(c.Exits) > 0 {
		panic("generator: GenerateExits called twice")
	}

	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		if !c.Config.HasNeighbor(dx, dy) {
			continue
		}
		s := edgeSeed(c.Config, dir)
		length := c.Width
		if dir.Horizontal() {
			length = c.Height
		}
		for _, p := range edgePositions(&s, length, c.Config.Openness) {
			var x, y int
			switch dir {
			case world.North:
				x, y = p, 0
			case world.South:
				x, y = p, c.Height-1
			case world.West:
				x, y = 0, p
			case world.East:
				x, y = c.Width-1, p
			}
			c.AddExit(chunk.Exit{X: x, Y: y, Side: dir})
		}
	}

	if len(c.Exits) == 0 {
		x, y := c.Center()
		c.AddExit(chunk.Exit{X: x, Y: y, Interior: true})
	}
}

// inside returns the tile a corridor leaves an exit from
func inside(e chunk.Exit) world.Coords {
	if e.Interior {
		return world.Coords{X: e.X, Y: e.Y}
	}
	dx, dy := e.Side.Opposite().Delta()
	return world.Coords{X: e.X + dx, Y: e.Y + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
