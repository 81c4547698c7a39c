// Package gameplay provides the tile-by-tile movement rules shared by the
// interactive clients.
package gameplay

import (
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// Terrain is a tile map a player can walk over. Both a single chunk (through
// ChunkTerrain) and a chunkview.View satisfy it.
type Terrain interface {
	Tile(x, y int) tile.Tile
	SetTile(x, y int, t tile.Tile)
	Entity(x, y int) tile.Entity
}

// ChunkTerrain adapts a chunk to Terrain. Writes outside the chunk are ignored.
type ChunkTerrain struct {
	C *chunk.Chunk
}

func (ct ChunkTerrain) Tile(x, y int) tile.Tile {
	return ct.C.At(x, y)
}

func (ct ChunkTerrain) SetTile(x, y int, t tile.Tile) {
	if ct.C.InBounds(x, y) {
		ct.C.Build(x, y, t)
	}
}

func (ct ChunkTerrain) Entity(x, y int) tile.Entity {
	return ct.C.EntityAt(x, y)
}

// Outcome is the result of a move attempt.
type Outcome int

const (
	Blocked Outcome = iota
	Moved
	OpenedDoor // a closed door was opened; the player stays put
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case OpenedDoor:
		return "opened door"
	}
	return "blocked"
}

// Walkable reports whether a player can stand on t.
func Walkable(t tile.Tile) bool {
	return t.IsFloor() || t == tile.DoorOpen
}

// CanOpenOneWay reports whether the one-way door t lets a step of (dx, dy)
// through. Any other tile returns false.
func CanOpenOneWay(t tile.Tile, dx, dy int) bool {
	dir, ok := world.FromDelta(dx, dy)
	if !ok {
		return false
	}
	switch t {
	case tile.OneWayTop:
		return dir == world.North
	case tile.OneWayBottom:
		return dir == world.South
	case tile.OneWayLeft:
		return dir == world.West
	case tile.OneWayRight:
		return dir == world.East
	}
	return false
}

// TryMove applies the movement rules to a step from (x, y) towards dir and
// returns the new position. Floor and open doors are entered; a closed door
// opens without moving; a one-way door opens and is entered only when
// stepping in its direction. Entities and features block.
func TryMove(m Terrain, x, y int, dir world.Direction) (int, int, Outcome) {
	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy

	if m.Entity(nx, ny) != tile.None {
		return x, y, Blocked
	}

	t := m.Tile(nx, ny)
	switch {
	case Walkable(t):
		return nx, ny, Moved
	case t == tile.DoorClosed:
		m.SetTile(nx, ny, tile.DoorOpen)
		return x, y, OpenedDoor
	case CanOpenOneWay(t, dx, dy):
		m.SetTile(nx, ny, tile.DoorOpen)
		return nx, ny, Moved
	}
	return x, y, Blocked
}

// Player is the position of the player in tile coordinates of its Terrain.
type Player struct {
	X, Y  int
	Moves int
}

// Move steps the player towards dir over m.
func (p *Player) Move(m Terrain, dir world.Direction) Outcome {
	nx, ny, out := TryMove(m, p.X, p.Y, dir)
	if out == Moved {
		p.X, p.Y = nx, ny
		p.Moves++
	}
	return out
}
