package world

// Coords identifies a position, either a chunk within the chunk-grid or a tile.
type Coords struct {
	X int
	Y int
}

// Less orders coordinates by X, then Y
func (c Coords) Less(other Coords) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// FloorDiv divides rounding towards negative infinity. divisor must be positive.
func FloorDiv(value, divisor int) int {
	if divisor <= 0 {
		panic("FloorDiv divisor must be positive")
	}
	q := value / divisor
	if value%divisor != 0 && value < 0 {
		q--
	}
	return q
}

// Split maps a world tile coordinate to the chunk coordinate containing it and
// the local coordinate within that chunk, with 0 <= local < dim.
func Split(value, dim int) (chunk, local int) {
	chunk = FloorDiv(value, dim)
	return chunk, value - chunk*dim
}
