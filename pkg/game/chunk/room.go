package chunk

import "chunky/pkg/engine/world"

// Room is a registered rectangle over the tile grid, bounds inclusive.
type Room struct {
	Index  int
	X1, Y1 int
	X2, Y2 int
}

// Width returns the number of columns covered
func (r Room) Width() int {
	return r.X2 - r.X1 + 1
}

// Height returns the number of rows covered
func (r Room) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Area returns the number of tiles covered
func (r Room) Area() int {
	return r.Width() * r.Height()
}

// Contains reports whether (x, y) lies inside the room
func (r Room) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Center returns the room's centre tile
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Overlaps reports whether the rooms come closer than margin tiles
func (r Room) Overlaps(o Room, margin int) bool {
	return r.X1-margin <= o.X2 && o.X1-margin <= r.X2 &&
		r.Y1-margin <= o.Y2 && o.Y1-margin <= r.Y2
}

// Inset shrinks the room by n on every side
func (r Room) Inset(n int) Room {
	return Room{Index: r.Index, X1: r.X1 + n, Y1: r.Y1 + n, X2: r.X2 - n, Y2: r.Y2 - n}
}

// Valid reports whether the rectangle is non-empty
func (r Room) Valid() bool {
	return r.X1 <= r.X2 && r.Y1 <= r.Y2
}

// Ring returns the positions just outside the room, with the outward direction
// of each. Corners are omitted since no orthogonal passage can use them.
func (r Room) Ring() []RingTile {
	var ring []RingTile
	for x := r.X1; x <= r.X2; x++ {
		ring = append(ring, RingTile{x, r.Y1 - 1, world.North}, RingTile{x, r.Y2 + 1, world.South})
	}
	for y := r.Y1; y <= r.Y2; y++ {
		ring = append(ring, RingTile{r.X1 - 1, y, world.West}, RingTile{r.X2 + 1, y, world.East})
	}
	return ring
}

// RingTile is one position of a room's surrounding ring.
type RingTile struct {
	X, Y    int
	Outward world.Direction
}

// Exit is a connection point to a neighbouring chunk.
type Exit struct {
	X, Y     int
	Side     world.Direction // border the exit lies on
	Interior bool            // anchor inside a chunk that has no neighbours
}
