package chunk

import (
	"github.com/zyedidia/generic/mapset"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/tile"
)

// Blocker marks extra positions as impassable during a reachability query.
type Blocker func(x, y int) bool

// open reports whether (x, y) is passable and not blocked
func (c *Chunk) open(x, y int, blocked Blocker) bool {
	if !c.At(x, y).Passable() {
		return false
	}
	return blocked == nil || !blocked(x, y)
}

// OnFoot returns a blocker for the walking rule: features and tiles holding
// an entity are impassable, as are the positions extra blocks. extra may be nil.
func (c *Chunk) OnFoot(extra Blocker) Blocker {
	return func(x, y int) bool {
		if !c.At(x, y).Walkable() || c.EntityAt(x, y) != tile.None {
			return true
		}
		return extra != nil && extra(x, y)
	}
}

// KeepsWalkable reports whether obstructing (x, y) leaves every walkable tile
// reachable on foot from every other one.
func (c *Chunk) KeepsWalkable(x, y int) bool {
	return c.IsConnected(c.OnFoot(func(bx, by int) bool { return bx == x && by == y }))
}

// Reachable collects the positions reachable from (x, y) via N/E/S/W through
// passable tiles. One-way doors count as passable in both directions.
func (c *Chunk) Reachable(x, y int, blocked Blocker) mapset.Set[world.Coords] {
	reachable := mapset.New[world.Coords]()
	if !c.open(x, y, blocked) {
		return reachable
	}
	queue := []world.Coords{{X: x, Y: y}}
	reachable.Put(queue[0])

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			n := world.Coords{X: current.X + dx, Y: current.Y + dy}
			if reachable.Has(n) || !c.open(n.X, n.Y, blocked) {
				continue
			}
			reachable.Put(n)
			queue = append(queue, n)
		}
	}
	return reachable
}

// PassableCount counts passable tiles that are not blocked
func (c *Chunk) PassableCount(blocked Blocker) int {
	n := 0
	c.ForEach(func(x, y int, _ tile.Tile) {
		if c.open(x, y, blocked) {
			n++
		}
	})
	return n
}

// Anchor returns the position connectivity is measured from: the first exit,
// or the first passable tile when there is no exit.
func (c *Chunk) Anchor() (world.Coords, bool) {
	if len(c.Exits) > 0 {
		return world.Coords{X: c.Exits[0].X, Y: c.Exits[0].Y}, true
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y).Passable() {
				return world.Coords{X: x, Y: y}, true
			}
		}
	}
	return world.Coords{}, false
}

// IsConnected reports whether every passable, unblocked tile is reachable
// from every other one.
func (c *Chunk) IsConnected(blocked Blocker) bool {
	total := c.PassableCount(blocked)
	if total == 0 {
		return true
	}
	var start world.Coords
	found := false
	if a, ok := c.Anchor(); ok && c.open(a.X, a.Y, blocked) {
		start, found = a, true
	}
	if !found {
		for y := 0; y < c.Height && !found; y++ {
			for x := 0; x < c.Width; x++ {
				if c.open(x, y, blocked) {
					start, found = world.Coords{X: x, Y: y}, true
					break
				}
			}
		}
	}
	reached := c.Reachable(start.X, start.Y, blocked)
	return reached.Size() == total
}

// Distances returns the BFS step count from (x, y) to every position, indexed
// by Index, with -1 for positions that cannot be reached.
func (c *Chunk) Distances(x, y int) []int {
	dist := make([]int, c.Width*c.Height)
	for i := range dist {
		dist[i] = -1
	}
	if !c.open(x, y, nil) {
		return dist
	}
	start := c.Index(x, y)
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		cx, cy := c.Position(current)
		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			nx, ny := cx+dx, cy+dy
			if !c.open(nx, ny, nil) {
				continue
			}
			if n := c.Index(nx, ny); dist[n] < 0 {
				dist[n] = dist[current] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// Path returns a shortest passable path from a to b, both ends included, or nil.
func (c *Chunk) Path(a, b world.Coords) []world.Coords {
	dist := c.Distances(b.X, b.Y)
	if dist[c.Index(a.X, a.Y)] < 0 {
		return nil
	}
	path := []world.Coords{a}
	current := a
	for current != b {
		d := dist[c.Index(current.X, current.Y)]
		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			nx, ny := current.X+dx, current.Y+dy
			if c.InBounds(nx, ny) && dist[c.Index(nx, ny)] == d-1 {
				current = world.Coords{X: nx, Y: ny}
				break
			}
		}
		path = append(path, current)
	}
	return path
}
