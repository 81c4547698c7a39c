package chunk

import (
	"fmt"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/tile"
)

// Validate checks the chunk's structural invariants without mutating it.
func (c *Chunk) Validate() error {
	if c.Width != c.Config.Width || c.Height != c.Config.Height {
		return fmt.Errorf("dimensions %dx%d differ from config %dx%d", c.Width, c.Height, c.Config.Width, c.Config.Height)
	}
	if c.terrain.Len() != c.Width*c.Height || c.entities.Len() != c.Width*c.Height {
		return fmt.Errorf("grid size %d/%d, want %d", c.terrain.Len(), c.entities.Len(), c.Width*c.Height)
	}

	for i, r := range c.Rooms {
		if r.Index != i {
			return fmt.Errorf("room %d has index %d", i, r.Index)
		}
		if !r.Valid() {
			return fmt.Errorf("room %d is inverted: (%d,%d)-(%d,%d)", i, r.X1, r.Y1, r.X2, r.Y2)
		}
		if !c.InBounds(r.X1, r.Y1) || !c.InBounds(r.X2, r.Y2) {
			return fmt.Errorf("room %d (%d,%d)-(%d,%d) outside %dx%d", i, r.X1, r.Y1, r.X2, r.Y2, c.Width, c.Height)
		}
	}

	for i, e := range c.Exits {
		if !c.InBounds(e.X, e.Y) {
			return fmt.Errorf("exit %d at (%d,%d) outside grid", i, e.X, e.Y)
		}
		if !e.Interior && !c.onSide(e.X, e.Y, e.Side) {
			return fmt.Errorf("exit %d at (%d,%d) not on %v border", i, e.X, e.Y, e.Side)
		}
		if !c.At(e.X, e.Y).Passable() {
			return fmt.Errorf("exit %d at (%d,%d) is %v", i, e.X, e.Y, c.At(e.X, e.Y))
		}
	}

	var entityErr error
	c.entities.ForEachCell(func(x, y int, e tile.Entity) {
		if entityErr == nil && e != tile.None && !c.At(x, y).Passable() {
			entityErr = fmt.Errorf("%v at (%d,%d) stands on %v", e, x, y, c.At(x, y))
		}
	})
	if entityErr != nil {
		return entityErr
	}

	if c.connected && !c.IsConnected(nil) {
		a, _ := c.Anchor()
		reached := c.Reachable(a.X, a.Y, nil)
		var lost world.Coords
		c.ForEach(func(x, y int, t tile.Tile) {
			p := world.Coords{X: x, Y: y}
			if t.Passable() && !reached.Has(p) {
				lost = p
			}
		})
		return fmt.Errorf("tile (%d,%d) unreachable from (%d,%d)", lost.X, lost.Y, a.X, a.Y)
	}

	if c.populated {
		onFoot := c.OnFoot(nil)
		if !c.IsConnected(onFoot) {
			a, _ := c.Anchor()
			reached := c.Reachable(a.X, a.Y, onFoot)
			var lost world.Coords
			c.ForEach(func(x, y int, t tile.Tile) {
				p := world.Coords{X: x, Y: y}
				if c.open(x, y, onFoot) && !reached.Has(p) {
					lost = p
				}
			})
			return fmt.Errorf("tile (%d,%d) cannot be walked to from (%d,%d)", lost.X, lost.Y, a.X, a.Y)
		}
	}
	return nil
}

// SelfTest panics if Validate finds a broken invariant.
func (c *Chunk) SelfTest() {
	if err := c.Validate(); err != nil {
		panic("chunk self-test failed: " + err.Error())
	}
}

func (c *Chunk) onSide(x, y int, side world.Direction) bool {
	switch side {
	case world.North:
		return y == 0
	case world.South:
		return y == c.Height-1
	case world.West:
		return x == 0
	case world.East:
		return x == c.Width-1
	}
	return false
}
