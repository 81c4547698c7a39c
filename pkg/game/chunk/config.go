// Package chunk holds the chunk data model: configuration, the tile and entity
// grids, the room and exit registries, and the structural self-test.
package chunk

import (
	"errors"
	"fmt"

	"chunky/pkg/engine/rng"
)

// Dial bounds for Chaos and Openness.
const (
	MinDial = 0
	MaxDial = 4
)

// Smallest chunk the filters can lay out.
const (
	MinWidth  = 16
	MinHeight = 8
)

// chunkSalt keys per-chunk seeds derived from a level seed.
const chunkSalt = 0x43484e4b

// Config is the immutable-per-chunk set of generation parameters.
type Config struct {
	Width  int // tiles, power of two
	Height int // tiles, power of two

	LevelWidth  int // chunks
	LevelHeight int // chunks

	X int // this chunk's position in the level
	Y int

	Chaos    int
	Openness int

	Seed rng.Seed

	// level is the seed At derived Seed from.
	level   rng.Seed
	derived bool
}

// DefaultConfig returns a 64x16 chunk at (0,0) of a 4x4 level.
func DefaultConfig(seed rng.Seed) Config {
	return Config{
		Width:       64,
		Height:      16,
		LevelWidth:  4,
		LevelHeight: 4,
		Seed:        seed,
	}
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Validate reports configuration defects.
func (c Config) Validate() error {
	if !isPowerOfTwo(c.Width) || !isPowerOfTwo(c.Height) {
		return fmt.Errorf("chunk dimensions %dx%d must be powers of two", c.Width, c.Height)
	}
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("chunk dimensions %dx%d below minimum %dx%d", c.Width, c.Height, MinWidth, MinHeight)
	}
	if c.LevelWidth <= 0 || c.LevelHeight <= 0 {
		return errors.New("level dimensions must be positive")
	}
	if c.X < 0 || c.X >= c.LevelWidth || c.Y < 0 || c.Y >= c.LevelHeight {
		return fmt.Errorf("position (%d,%d) outside level %dx%d", c.X, c.Y, c.LevelWidth, c.LevelHeight)
	}
	if c.Chaos < MinDial || c.Chaos > MaxDial {
		return fmt.Errorf("chaos %d outside [%d,%d]", c.Chaos, MinDial, MaxDial)
	}
	if c.Openness < MinDial || c.Openness > MaxDial {
		return fmt.Errorf("openness %d outside [%d,%d]", c.Openness, MinDial, MaxDial)
	}
	return nil
}

// At returns a copy positioned at chunk (x, y) with that position's own seed,
// derived from the level seed. The receiver is not modified.
func (c Config) At(x, y int) Config {
	out := c
	out.X = x
	out.Y = y
	out.level = c.LevelSeed()
	out.derived = true
	out.Seed = out.level.Derive(chunkSalt, x, y)
	return out
}

// LevelSeed returns the seed shared by every chunk of the level: the seed At
// derived this config from, or Seed itself for a config built by hand.
func (c Config) LevelSeed() rng.Seed {
	if c.derived {
		return c.level
	}
	return c.Seed
}

// HasNeighbor reports whether the chunk has a neighbour inside the level in direction dx, dy.
func (c Config) HasNeighbor(dx, dy int) bool {
	nx, ny := c.X+dx, c.Y+dy
	return nx >= 0 && nx < c.LevelWidth && ny >= 0 && ny < c.LevelHeight
}
