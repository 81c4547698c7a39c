package generator

import (
	"errors"
	"fmt"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// ErrStrategyFailed is wrapped by every connect strategy failure.
var ErrStrategyFailed = errors.New("connect strategy failed")

func strategyFailed(name, reason string) error {
	return fmt.Errorf("%s: %w: %s", name, ErrStrategyFailed, reason)
}

// Method selects a connect strategy.
type Method int

const (
	MethodMain Method = iota
	MethodInner
	MethodGrand
)

func (m Method) String() string {
	switch m {
	case MethodMain:
		return "main"
	case MethodInner:
		return "inner"
	case MethodGrand:
		return "grand"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to a Method
func ParseMethod(name string) (Method, error) {
	switch name {
	case "main", "":
		return MethodMain, nil
	case "inner":
		return MethodInner, nil
	case "grand":
		return MethodGrand, nil
	}
	return MethodMain, fmt.Errorf("unknown method %q (want main, inner or grand)", name)
}

// Connect runs the strategy m selects. MethodMain never fails.
func Connect(c *chunk.Chunk, m Method) error {
	switch m {
	case MethodMain:
		ConnectExits(c)
		return nil
	case MethodInner:
		return ConnectExitsInnerLoop(c)
	case MethodGrand:
		return ConnectExitsGrandCentral(c)
	}
	return fmt.Errorf("unknown method %d", int(m))
}

// placement is a tile scheduled by a plan
type placement struct {
	world.Coords
	tile tile.Tile
}

// plan collects the carving a strategy intends to do, so that nothing is
// written to the chunk until the strategy knows it can succeed.
type plan struct {
	open  []world.Coords
	doors []placement
	rooms []chunk.Room
}

// line schedules an axis-aligned run of floor, both ends included
func (p *plan) line(x1, y1, x2, y2 int) {
	dx, dy := sign(x2-x1), sign(y2-y1)
	x, y := x1, y1
	for {
		p.open = append(p.open, world.Coords{X: x, Y: y})
		if x == x2 && y == y2 {
			return
		}
		x, y = x+dx, y+dy
	}
}

// elbow schedules an L-shaped corridor from a to b
func (p *plan) elbow(a, b world.Coords, horizontalFirst bool) {
	if horizontalFirst {
		p.line(a.X, a.Y, b.X, a.Y)
		p.line(b.X, a.Y, b.X, b.Y)
		return
	}
	p.line(a.X, a.Y, a.X, b.Y)
	p.line(a.X, b.Y, b.X, b.Y)
}

// rect schedules every tile of r
func (p *plan) rect(r chunk.Room) {
	for y := r.Y1; y <= r.Y2; y++ {
		p.line(r.X1, y, r.X2, y)
	}
}

// apply writes the plan: rock becomes floor, doors overwrite, rooms are
// registered, the chunk is walled up and marked connected.
func (p *plan) apply(c *chunk.Chunk) {
	for _, pos := range p.open {
		if c.At(pos.X, pos.Y) == tile.Rock {
			c.Build(pos.X, pos.Y, tile.Empty)
		}
	}
	for _, d := range p.doors {
		c.Build(d.X, d.Y, d.tile)
	}
	for _, r := range p.rooms {
		c.AddRoom(r)
	}
	wallUp(c)
	c.MarkConnected()
}

// ConnectExits joins every exit to a junction near the centre with L-shaped
// corridors, adds openness extra corridors between exit pairs and walls up.
func ConnectExits(c *chunk.Chunk) {
	s := c.Seed()
	chaos := c.Config.Chaos

	jx := clamp(c.Width/2+s.Roll(-chaos*c.Width/16, chaos*c.Width/16), 2, c.Width-3)
	jy := clamp(c.Height/2+s.Roll(-chaos*c.Height/16, chaos*c.Height/16), 2, c.Height-3)
	junction := world.Coords{X: jx, Y: jy}

	var p plan
	for _, e := range c.Exits {
		p.elbow(inside(e), junction, s.Roll(0, 1) == 0)
	}
	if len(c.Exits) > 1 {
		for i := 0; i < c.Config.Openness; i++ {
			a := c.Exits[s.Roll(0, len(c.Exits)-1)]
			b := c.Exits[s.Roll(0, len(c.Exits)-1)]
			p.elbow(inside(a), inside(b), s.Roll(0, 1) == 0)
		}
	}
	p.apply(c)
}

// ConnectExitsInnerLoop joins the exits through a rectangular ring corridor.
// On failure the chunk is left untouched.
func ConnectExitsInnerLoop(c *chunk.Chunk) error {
	const name = "inner loop"
	if c.Width < 16 || c.Height < 12 {
		return strategyFailed(name, fmt.Sprintf("chunk %dx%d too small for a ring", c.Width, c.Height))
	}
	if len(c.Exits) == 0 {
		return strategyFailed(name, "no exits")
	}

	s := c.Seed()
	inset := 3 + s.Roll(0, c.Config.Chaos/2)
	ring := chunk.Room{X1: inset, Y1: inset, X2: c.Width - 1 - inset, Y2: c.Height - 1 - inset}

	var p plan
	p.line(ring.X1, ring.Y1, ring.X2, ring.Y1)
	p.line(ring.X1, ring.Y2, ring.X2, ring.Y2)
	p.line(ring.X1, ring.Y1, ring.X1, ring.Y2)
	p.line(ring.X2, ring.Y1, ring.X2, ring.Y2)
	for _, e := range c.Exits {
		from := inside(e)
		p.elbow(from, nearestOnRing(ring, from), !e.Side.Horizontal() || e.Interior)
	}
	p.apply(c)
	return nil
}

// nearestOnRing returns the point of the outline of r closest to pos
func nearestOnRing(r chunk.Room, pos world.Coords) world.Coords {
	x, y := clamp(pos.X, r.X1, r.X2), clamp(pos.Y, r.Y1, r.Y2)
	if x != pos.X || y != pos.Y {
		return world.Coords{X: x, Y: y}
	}
	// pos lies strictly inside: project onto the closest side.
	best := world.Coords{X: x, Y: r.Y1}
	bestDist := y - r.Y1
	if d := r.Y2 - y; d < bestDist {
		best, bestDist = world.Coords{X: x, Y: r.Y2}, d
	}
	if d := x - r.X1; d < bestDist {
		best, bestDist = world.Coords{X: r.X1, Y: y}, d
	}
	if d := r.X2 - x; d < bestDist {
		best = world.Coords{X: r.X2, Y: y}
	}
	return best
}

// ConnectExitsGrandCentral joins the exits through a central hub room with a
// door on each spoke. On failure the chunk is left untouched.
func ConnectExitsGrandCentral(c *chunk.Chunk) error {
	const name = "grand central"
	if c.Width < 16 || c.Height < 10 {
		return strategyFailed(name, fmt.Sprintf("chunk %dx%d too small for a hub", c.Width, c.Height))
	}
	if len(c.Exits) == 0 {
		return strategyFailed(name, "no exits")
	}

	s := c.Seed()
	hw := max(4, c.Width/4+s.Roll(0, c.Config.Chaos))
	hh := max(3, c.Height/3)
	x1, y1 := (c.Width-hw)/2, (c.Height-hh)/2
	hub := chunk.Room{X1: x1, Y1: y1, X2: x1 + hw - 1, Y2: y1 + hh - 1}

	var p plan
	p.rect(hub)
	p.rooms = append(p.rooms, hub)
	for _, e := range c.Exits {
		if e.Interior && hub.Contains(e.X, e.Y) {
			continue
		}
		var door world.Coords
		horizontalFirst := true
		switch {
		case e.Interior || e.Side == world.North:
			door = world.Coords{X: clamp(e.X, hub.X1, hub.X2), Y: hub.Y1 - 1}
		case e.Side == world.South:
			door = world.Coords{X: clamp(e.X, hub.X1, hub.X2), Y: hub.Y2 + 1}
		case e.Side == world.West:
			door = world.Coords{X: hub.X1 - 1, Y: clamp(e.Y, hub.Y1, hub.Y2)}
			horizontalFirst = false
		default:
			door = world.Coords{X: hub.X2 + 1, Y: clamp(e.Y, hub.Y1, hub.Y2)}
			horizontalFirst = false
		}
		p.elbow(inside(e), door, horizontalFirst)
		p.doors = append(p.doors, placement{door, doorTile(s.Roll(0, 1))})
	}
	p.apply(c)
	return nil
}

// doorTile maps a 0/1 roll to a closed or open door
func doorTile(roll int) tile.Tile {
	if roll == 0 {
		return tile.DoorClosed
	}
	return tile.DoorOpen
}

// wallUp turns every rock tile 8-adjacent to a passable tile into wall
func wallUp(c *chunk.Chunk) {
	var walls []world.Coords
	c.ForEach(func(x, y int, t tile.Tile) {
		if t != tile.Rock {
			return
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if c.At(x+dx, y+dy).Passable() {
					walls = append(walls, world.Coords{X: x, Y: y})
					return
				}
			}
		}
	})
	for _, w := range walls {
		c.Build(w.X, w.Y, tile.Wall)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
