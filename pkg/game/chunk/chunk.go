package chunk

import (
	"fmt"

	"chunky/pkg/engine/rng"
	"chunky/pkg/engine/world"
	"chunky/pkg/game/tile"
)

// Chunk is one fixed-size tile grid plus its registries. Filters mutate it in place.
type Chunk struct {
	Width  int
	Height int

	// Config is the configuration the chunk was built from. Its Seed field
	// keeps the starting state; the live stream is returned by Seed().
	Config Config

	Rooms []Room
	Exits []Exit

	terrain   world.Grid[tile.Tile]
	entities  world.Grid[tile.Entity]
	seed      rng.Seed
	connected bool
	populated bool
}

// New creates an all-rock chunk. It panics if cfg has a configuration defect.
func New(cfg Config) *Chunk {
	if err := cfg.Validate(); err != nil {
		panic("chunk: " + err.Error())
	}
	return &Chunk{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Config:   cfg,
		terrain:  world.NewGrid(cfg.Width, cfg.Height, tile.Rock),
		entities: world.NewGrid(cfg.Width, cfg.Height, tile.None),
		seed:     cfg.Seed,
	}
}

// Index returns the row-major index of (x, y), as used by Distances
func (c *Chunk) Index(x, y int) int {
	return c.terrain.Index(x, y)
}

// Position converts an Index back to (x, y)
func (c *Chunk) Position(i int) (int, int) {
	return c.terrain.Position(i)
}

// Center returns the chunk's centre tile
func (c *Chunk) Center() (int, int) {
	return c.terrain.CenterPosition()
}

// Seed returns the chunk's own random stream.
func (c *Chunk) Seed() *rng.Seed {
	return &c.seed
}

// InBounds checks if a position is inside the grid
func (c *Chunk) InBounds(x, y int) bool {
	return c.terrain.IsValidPosition(x, y)
}

// IsBorder checks if a position lies on the outermost ring of the grid
func (c *Chunk) IsBorder(x, y int) bool {
	return c.terrain.IsOnPerimeter(x, y)
}

// At returns the terrain at (x, y); Rock outside the grid.
func (c *Chunk) At(x, y int) tile.Tile {
	if !c.InBounds(x, y) {
		return tile.Rock
	}
	return c.terrain.Get(x, y)
}

// Build sets the terrain at (x, y). Writing outside the grid is a filter bug and panics.
func (c *Chunk) Build(x, y int, t tile.Tile) {
	if !c.terrain.Set(x, y, t) {
		panic(fmt.Sprintf("chunk: Build(%d, %d) outside %dx%d", x, y, c.Width, c.Height))
	}
}

// EntityAt returns the entity marker at (x, y); None outside the grid.
func (c *Chunk) EntityAt(x, y int) tile.Entity {
	if !c.InBounds(x, y) {
		return tile.None
	}
	return c.entities.Get(x, y)
}

// Place sets the entity marker at (x, y). Writing outside the grid panics.
func (c *Chunk) Place(x, y int, e tile.Entity) {
	if !c.entities.Set(x, y, e) {
		panic(fmt.Sprintf("chunk: Place(%d, %d) outside %dx%d", x, y, c.Width, c.Height))
	}
}

// ForEach calls fn for every cell, row by row
func (c *Chunk) ForEach(fn func(x, y int, t tile.Tile)) {
	c.terrain.ForEachCell(fn)
}

// AddExit registers an exit and opens its tile
func (c *Chunk) AddExit(e Exit) {
	c.Build(e.X, e.Y, tile.Empty)
	c.Exits = append(c.Exits, e)
}

// IsExit reports whether (x, y) is a registered exit
func (c *Chunk) IsExit(x, y int) bool {
	for _, e := range c.Exits {
		if e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// AddRoom registers r, assigning its index, and returns the stored room
func (c *Chunk) AddRoom(r Room) Room {
	r.Index = len(c.Rooms)
	c.Rooms = append(c.Rooms, r)
	return r
}

// Room returns the room with the given index. It panics if there is none.
func (c *Chunk) Room(i int) Room {
	if i < 0 || i >= len(c.Rooms) {
		panic(fmt.Sprintf("chunk: room %d of %d", i, len(c.Rooms)))
	}
	return c.Rooms[i]
}

// RoomAt returns the innermost registered room containing (x, y)
func (c *Chunk) RoomAt(x, y int) (Room, bool) {
	for i := len(c.Rooms) - 1; i >= 0; i-- {
		if c.Rooms[i].Contains(x, y) {
			return c.Rooms[i], true
		}
	}
	return Room{}, false
}

// InAnyRoom reports whether (x, y) lies inside a registered room
func (c *Chunk) InAnyRoom(x, y int) bool {
	_, ok := c.RoomAt(x, y)
	return ok
}

// IsDoorway reports whether a ring tile is an open floor passage, one tile
// wide, leading out of a room. Exits and border tiles never qualify.
func (c *Chunk) IsDoorway(rt RingTile) bool {
	if !c.At(rt.X, rt.Y).IsFloor() || c.IsBorder(rt.X, rt.Y) || c.IsExit(rt.X, rt.Y) {
		return false
	}
	if rt.Outward.Horizontal() {
		return !c.At(rt.X, rt.Y-1).Passable() && !c.At(rt.X, rt.Y+1).Passable()
	}
	return !c.At(rt.X-1, rt.Y).Passable() && !c.At(rt.X+1, rt.Y).Passable()
}

// MarkConnected records that a connect strategy has joined every exit.
// From then on Validate also checks global reachability.
func (c *Chunk) MarkConnected() {
	c.connected = true
}

// Connected reports whether a connect strategy has run
func (c *Chunk) Connected() bool {
	return c.connected
}

// MarkPopulated records that features and creatures have been placed.
// From then on Validate also checks reachability on foot.
func (c *Chunk) MarkPopulated() {
	c.populated = true
}

// Populated reports whether MarkPopulated was called
func (c *Chunk) Populated() bool {
	return c.populated
}

// Clone returns a deep copy of the chunk, including its seed state
func (c *Chunk) Clone() *Chunk {
	out := *c
	out.Rooms = append([]Room(nil), c.Rooms...)
	out.Exits = append([]Exit(nil), c.Exits...)
	out.terrain = c.terrain.Clone()
	out.entities = c.entities.Clone()
	return &out
}

// Equal reports whether both chunks hold identical terrain and entities
func (c *Chunk) Equal(o *Chunk) bool {
	if c.Width != o.Width || c.Height != o.Height {
		return false
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) != o.At(x, y) || c.EntityAt(x, y) != o.EntityAt(x, y) {
				return false
			}
		}
	}
	return true
}
