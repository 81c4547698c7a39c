// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Grid is a dense width×height array of cells addressed by (x, y), row-major.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// NewGrid creates a grid with every cell set to fill
func NewGrid[T any](width, height int, fill T) Grid[T] {
	if width < 0 || height < 0 {
		panic("Grid dimensions must not be negative")
	}
	g := Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the number of cells backing the grid
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid[T]) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *Grid[T]) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// Get returns the cell at (x, y). It panics when out of bounds.
func (g *Grid[T]) Get(x, y int) T {
	if !g.IsValidPosition(x, y) {
		panic("Grid access out of bounds")
	}
	return g.cells[y*g.width+x]
}

// Set stores v at (x, y). Returns false if out of bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[y*g.width+x] = v
	return true
}

// CenterPosition returns the x and y of the grid center
func (g *Grid[T]) CenterPosition() (int, int) {
	return g.width / 2, g.height / 2
}

// Index returns the row-major index of (x, y)
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// Position converts a row-major index back to (x, y)
func (g *Grid[T]) Position(i int) (int, int) {
	return i % g.width, i / g.width
}

// ForEachCell iterates over all cells row by row
func (g *Grid[T]) ForEachCell(fn func(x, y int, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// Clone returns an independent copy of the grid
func (g *Grid[T]) Clone() Grid[T] {
	c := Grid[T]{
		cells:  make([]T, len(g.cells)),
		width:  g.width,
		height: g.height,
	}
	copy(c.cells, g.cells)
	return c
}
