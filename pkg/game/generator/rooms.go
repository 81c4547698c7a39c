package generator

import (
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/tile"
)

// roomMargin is the gap, in tiles, kept between expanded rooms
const roomMargin = 2

// corridorTiles lists the floor tiles that belong to no room, excluding exits and the border
func corridorTiles(c *chunk.Chunk) []world.Coords {
	var out []world.Coords
	c.ForEach(func(x, y int, t tile.Tile) {
		if t == tile.Empty && !c.IsBorder(x, y) && !c.IsExit(x, y) && !c.InAnyRoom(x, y) {
			out = append(out, world.Coords{X: x, Y: y})
		}
	})
	return out
}

// grow extends r by one tile towards dir
func grow(r chunk.Room, dir world.Direction) chunk.Room {
	switch dir {
	case world.North:
		r.Y1--
	case world.South:
		r.Y2++
	case world.West:
		r.X1--
	case world.East:
		r.X2++
	}
	return r
}

// canHold reports whether r may become a room: off the border ring, free of
// doors, exits and features, and clear of every registered room.
func canHold(c *chunk.Chunk, r chunk.Room) bool {
	if r.X1 < 1 || r.Y1 < 1 || r.X2 > c.Width-2 || r.Y2 > c.Height-2 {
		return false
	}
	for _, o := range c.Rooms {
		if r.Overlaps(o, roomMargin) {
			return false
		}
	}
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			t := c.At(x, y)
			if t.IsDoor() || t.IsFeature() || c.IsExit(x, y) {
				return false
			}
		}
	}
	return true
}

// RoomExpand grows rooms out of corridor tiles, puts doors on their 1-wide
// doorways and walls up. At least one room is registered afterwards.
func RoomExpand(c *chunk.Chunk, minIter, maxIter int) {
	s := c.Seed()
	attempts := 2 + c.Config.Openness + c.Width*c.Height/512
	first := len(c.Rooms)

	for i := 0; i < attempts; i++ {
		candidates := corridorTiles(c)
		if len(candidates) == 0 {
			break
		}
		seed := candidates[s.Roll(0, len(candidates)-1)]
		r := chunk.Room{X1: seed.X, Y1: seed.Y, X2: seed.X, Y2: seed.Y}
		if !canHold(c, r) {
			continue
		}
		for n := s.Roll(minIter, maxIter); n > 0; n-- {
			if next := grow(r, world.Direction(s.Roll(0, 3))); canHold(c, next) {
				r = next
			}
		}
		if r.Width() < 2 || r.Height() < 2 {
			continue
		}
		carveRoom(c, r)
		c.AddRoom(r)
	}

	for _, r := range c.Rooms[first:] {
		placeDoors(c, r)
	}
	wallUp(c)

	if len(c.Rooms) == 0 {
		c.AddRoom(fallbackRoom(c))
	}
}

// carveRoom turns every tile of r into floor
func carveRoom(c *chunk.Chunk, r chunk.Room) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			c.Build(x, y, tile.Empty)
		}
	}
}

// placeDoors puts a closed or open door on every doorway of r
func placeDoors(c *chunk.Chunk, r chunk.Room) {
	s := c.Seed()
	for _, rt := range r.Ring() {
		if c.IsDoorway(rt) {
			c.Build(rt.X, rt.Y, doorTile(s.Roll(0, 1)))
		}
	}
}

// fallbackRoom picks a 1x1 room on a floor tile, preferring corridors
func fallbackRoom(c *chunk.Chunk) chunk.Room {
	if tiles := corridorTiles(c); len(tiles) > 0 {
		p := tiles[0]
		return chunk.Room{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
	}
	var found *world.Coords
	c.ForEach(func(x, y int, t tile.Tile) {
		if found == nil && t.IsFloor() {
			found = &world.Coords{X: x, Y: y}
		}
	})
	if found == nil {
		x, y := c.Center()
		c.Build(x, y, tile.Empty)
		found = &world.Coords{X: x, Y: y}
	}
	return chunk.Room{X1: found.X, Y1: found.Y, X2: found.X, Y2: found.Y}
}

// RoomInRoom nests a walled room inside up to 1+chaos/2 rooms at least 6x6,
// keeping a floor band inside the host so its entrances stay connected.
// It returns the number of rooms nested.
func RoomInRoom(c *chunk.Chunk) int {
	s := c.Seed()
	var hosts []chunk.Room
	for _, r := range c.Rooms {
		if r.Width() >= 6 && r.Height() >= 6 && canNest(c, r) {
			hosts = append(hosts, r)
		}
	}
	s.Shuffle(len(hosts), func(i, j int) { hosts[i], hosts[j] = hosts[j], hosts[i] })

	nested := 0
	for _, host := range hosts {
		if nested == 1+c.Config.Chaos/2 {
			break
		}
		wall := host.Inset(1)
		inner := host.Inset(2)
		for y := wall.Y1; y <= wall.Y2; y++ {
			for x := wall.X1; x <= wall.X2; x++ {
				if !inner.Contains(x, y) {
					c.Build(x, y, tile.Wall)
				}
			}
		}
		ring := inner.Ring()
		door := ring[s.Roll(0, len(ring)-1)]
		c.Build(door.X, door.Y, tile.DoorClosed)
		c.AddRoom(inner)
		nested++
	}
	return nested
}

// canNest reports whether r is plain floor holding no other room
func canNest(c *chunk.Chunk, r chunk.Room) bool {
	for _, o := range c.Rooms {
		if o.Index != r.Index && r.Overlaps(o, 0) {
			return false
		}
	}
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if c.At(x, y) != tile.Empty || c.EntityAt(x, y) != tile.None || c.IsExit(x, y) {
				return false
			}
		}
	}
	return true
}
