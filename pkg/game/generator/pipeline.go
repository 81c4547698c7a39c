// Package generator holds the chunk filters: exit placement, the connect
// strategies and the room, door and decoration passes, plus the pipelines
// that chain them.
package generator

import (
	"chunky/pkg/game/chunk"
)

// Room growth iterations used by Basic
const (
	DefaultExpandMin = 2
	DefaultExpandMax = 8
)

// Basic builds the chunk for cfg with exits, the default connect strategy and
// room expansion. It is the pipeline the chunk view uses.
func Basic(cfg chunk.Config) *chunk.Chunk {
	c := chunk.New(cfg)
	GenerateExits(c)
	ConnectExits(c)
	RoomExpand(c, DefaultExpandMin, DefaultExpandMax)
	return c
}

// Dungeon runs the full structural pipeline on a fresh chunk: exits, the
// connect strategy m, room expansion, nested rooms, one-way doors and
// decoration, self-testing between stages. Side rolls come from a copy of
// the config seed so the chunk's own stream is left to the filters.
func Dungeon(c *chunk.Chunk, m Method) error {
	s := c.Config.Seed
	GenerateExits(c)
	c.SelfTest()
	if err := Connect(c, m); err != nil {
		return err
	}
	iter := s.Roll(2, 8)
	RoomExpand(c, iter, iter+6)
	c.SelfTest()
	RoomInRoom(c)
	c.SelfTest()
	OneWayDoors(c, s.Roll(0, 4))
	Beautify(c)
	return nil
}

// Sketch runs exits, the connect strategy m and decoration only.
func Sketch(c *chunk.Chunk, m Method) error {
	GenerateExits(c)
	if err := Connect(c, m); err != nil {
		return err
	}
	Beautify(c)
	return nil
}
