// Package chunkview keeps a movable window over a level of chunks, generating
// each chunk the first time the window touches it.
//
// Coordinate systems: world coordinates address tiles across the whole level
// (chunk (cx, cy) covers [cx*w, cx*w+w) x [cy*h, cy*h+h)); view coordinates
// are local to the window, typically what the user sees on screen.
package chunkview

import (
	"errors"
	"fmt"
	"sort"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/generator"
	"chunky/pkg/game/tile"
)

// Builder produces the chunk for a positioned config.
type Builder func(cfg chunk.Config) *chunk.Chunk

// Option configures a View.
type Option func(*View)

// WithBuilder replaces the generation pipeline.
func WithBuilder(b Builder) Option {
	return func(v *View) {
		v.build = b
	}
}

// Range is an inclusive rectangle of chunk coordinates. It is empty when
// X2 < X1 or Y2 < Y1.
type Range struct {
	X1, Y1 int
	X2, Y2 int
}

// Empty reports whether the range covers no chunk
func (r Range) Empty() bool {
	return r.X2 < r.X1 || r.Y2 < r.Y1
}

// Contains reports whether chunk (cx, cy) lies in the range
func (r Range) Contains(cx, cy int) bool {
	return !r.Empty() && cx >= r.X1 && cx <= r.X2 && cy >= r.Y1 && cy <= r.Y2
}

var emptyRange = Range{X2: -1, Y2: -1}

// View is a window of Width x Height tiles over the level described by its
// config. Chunks are cached for the life of the view. Not safe for
// concurrent use.
type View struct {
	cfg    chunk.Config
	width  int
	height int

	chunkWidth  int
	chunkHeight int

	x, y    int
	current Range

	chunks    map[world.Coords]*chunk.Chunk
	build     Builder
	generated int
}

// New creates a view of width x height tiles over the level of cfg. No chunk
// is generated until ChangePosition is called.
func New(cfg chunk.Config, width, height int, opts ...Option) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("view size %dx%d must be positive", width, height)
	}
	v := &View{
		cfg:         cfg,
		width:       width,
		height:      height,
		chunkWidth:  cfg.Width,
		chunkHeight: cfg.Height,
		current:     emptyRange,
		chunks:      make(map[world.Coords]*chunk.Chunk),
		build:       generator.Basic,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// ChangePosition centres the view on world tile (x, y) and generates every
// chunk the view overlaps that is not cached yet.
func (v *View) ChangePosition(x, y int) {
	v.x, v.y = x, y

	startX, startY := x-v.width/2, y-v.height/2
	endX, endY := startX+v.width-1, startY+v.height-1

	next := Range{
		X1: max(0, world.FloorDiv(startX, v.chunkWidth)),
		Y1: max(0, world.FloorDiv(startY, v.chunkHeight)),
		X2: min(v.cfg.LevelWidth-1, world.FloorDiv(endX, v.chunkWidth)),
		Y2: min(v.cfg.LevelHeight-1, world.FloorDiv(endY, v.chunkHeight)),
	}
	if next.Empty() {
		v.current = emptyRange
		return
	}
	if next == v.current {
		return
	}

	for cy := next.Y1; cy <= next.Y2; cy++ {
		for cx := next.X1; cx <= next.X2; cx++ {
			if v.current.Contains(cx, cy) {
				continue
			}
			key := world.Coords{X: cx, Y: cy}
			if _, ok := v.chunks[key]; ok {
				continue
			}
			v.chunks[key] = v.build(v.cfg.At(cx, cy))
			v.generated++
		}
	}
	v.current = next
}

// chunkAt returns the cached chunk holding world tile (wx, wy) and the local
// position within it
func (v *View) chunkAt(wx, wy int) (*chunk.Chunk, int, int) {
	if wx < 0 || wy < 0 || wx >= v.cfg.LevelWidth*v.chunkWidth || wy >= v.cfg.LevelHeight*v.chunkHeight {
		return nil, 0, 0
	}
	cx, lx := world.Split(wx, v.chunkWidth)
	cy, ly := world.Split(wy, v.chunkHeight)
	c := v.chunks[world.Coords{X: cx, Y: cy}]
	return c, lx, ly
}

// Tile returns the terrain at world tile (wx, wy); Rock outside the level or
// in a chunk that has not been generated.
func (v *View) Tile(wx, wy int) tile.Tile {
	c, x, y := v.chunkAt(wx, wy)
	if c == nil {
		return tile.Rock
	}
	return c.At(x, y)
}

// SetTile changes the terrain at world tile (wx, wy). It does nothing outside
// the level or in a chunk that has not been generated.
func (v *View) SetTile(wx, wy int, t tile.Tile) {
	if c, x, y := v.chunkAt(wx, wy); c != nil {
		c.Build(x, y, t)
	}
}

// Entity returns the entity marker at world tile (wx, wy)
func (v *View) Entity(wx, wy int) tile.Entity {
	c, x, y := v.chunkAt(wx, wy)
	if c == nil {
		return tile.None
	}
	return c.EntityAt(x, y)
}

// Chunk returns the cached chunk at chunk coordinates (cx, cy)
func (v *View) Chunk(cx, cy int) (*chunk.Chunk, bool) {
	c, ok := v.chunks[world.Coords{X: cx, Y: cy}]
	return c, ok
}

// Loaded returns the coordinates of every cached chunk, sorted
func (v *View) Loaded() []world.Coords {
	keys := make([]world.Coords, 0, len(v.chunks))
	for k := range v.chunks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Generated returns how many chunks the builder has produced
func (v *View) Generated() int {
	return v.generated
}

// Config returns the level configuration the view was built from
func (v *View) Config() chunk.Config {
	return v.cfg
}

// WorldSize returns the level size in tiles
func (v *View) WorldSize() (int, int) {
	return v.cfg.LevelWidth * v.chunkWidth, v.cfg.LevelHeight * v.chunkHeight
}

// ChunkAt returns the cached chunk holding world tile (wx, wy) and the tile's
// position within it
func (v *View) ChunkAt(wx, wy int) (*chunk.Chunk, world.Coords, bool) {
	c, x, y := v.chunkAt(wx, wy)
	return c, world.Coords{X: x, Y: y}, c != nil
}

// ViewWidth returns the window width in tiles
func (v *View) ViewWidth() int {
	return v.width
}

// ViewHeight returns the window height in tiles
func (v *View) ViewHeight() int {
	return v.height
}

// Origin returns the world tile at the window's top-left corner
func (v *View) Origin() (int, int) {
	return v.x - v.width/2, v.y - v.height/2
}

// Position returns the world tile the view is centred on
func (v *View) Position() (int, int) {
	return v.x, v.y
}

// Range returns the chunk range the view overlaps, clamped to the level
func (v *View) Range() Range {
	return v.current
}

// Row returns one row of the window in view coordinates
func (v *View) Row(row int) []tile.Tile {
	if row < 0 || row >= v.height {
		panic(fmt.Sprintf("chunkview: row %d outside view of height %d", row, v.height))
	}
	ox, oy := v.Origin()
	out := make([]tile.Tile, v.width)
	for i := range out {
		out[i] = v.Tile(ox+i, oy+row)
	}
	return out
}

// Validate checks the view's internal consistency
func (v *View) Validate() error {
	if v.width <= 0 || v.height <= 0 {
		return errors.New("view size must be positive")
	}
	if v.generated != len(v.chunks) {
		return fmt.Errorf("generated %d chunks but %d cached", v.generated, len(v.chunks))
	}
	for key, c := range v.chunks {
		if key.X < 0 || key.X >= v.cfg.LevelWidth || key.Y < 0 || key.Y >= v.cfg.LevelHeight {
			return fmt.Errorf("cached chunk %v outside level", key)
		}
		if c.Config.X != key.X || c.Config.Y != key.Y {
			return fmt.Errorf("chunk cached at %v built for (%d,%d)", key, c.Config.X, c.Config.Y)
		}
	}
	for cy := v.current.Y1; cy <= v.current.Y2; cy++ {
		for cx := v.current.X1; cx <= v.current.X2; cx++ {
			if _, ok := v.chunks[world.Coords{X: cx, Y: cy}]; !ok {
				return fmt.Errorf("chunk (%d,%d) in range but not cached", cx, cy)
			}
		}
	}
	return nil
}

// SelfTest panics if Validate finds an inconsistency.
func (v *View) SelfTest() {
	if err := v.Validate(); err != nil {
		panic("chunkview self-test failed: " + err.Error())
	}
}
