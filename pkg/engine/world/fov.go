package world

// FOVRadius is the default field of view radius (Chebyshev distance).
const FOVRadius = 6

// CalculateFOV returns the positions visible from (cx, cy) within radius.
// Uses a Chebyshev square with Bresenham line-of-sight; positions for which
// blocks returns true stop sight (the blocking position itself is still seen).
func CalculateFOV(width, height int, blocks func(x, y int) bool, cx, cy, radius int) []Coords {
	inBounds := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height
	}
	if !inBounds(cx, cy) {
		return nil
	}

	result := []Coords{{cx, cy}}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !inBounds(x, y) {
				continue
			}
			if hasLineOfSight(blocks, cx, cy, x, y) {
				result = append(result, Coords{x, y})
			}
		}
	}
	return result
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// hasLineOfSight returns true if nothing blocks the straight line from (x0,y0)
// to (x1,y1), not counting the endpoints.
func hasLineOfSight(blocks func(x, y int) bool, x0, y0, x1, y1 int) bool {
	dx, dy := x1-x0, y1-y0
	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)

	x, y := x0, y0
	if absDx >= absDy {
		err := 2*absDy - absDx
		for x != x1 {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy
			if x == x1 && y == y1 {
				return true
			}
			if blocks(x, y) {
				return false
			}
		}
	} else {
		err := 2*absDx - absDy
		for y != y1 {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			if x == x1 && y == y1 {
				return true
			}
			if blocks(x, y) {
				return false
			}
		}
	}
	return true
}

// RevealFOV marks every position visible from (cx, cy) as discovered
func RevealFOV(discovered *Grid[bool], blocks func(x, y int) bool, cx, cy, radius int) {
	for _, c := range CalculateFOV(discovered.Width(), discovered.Height(), blocks, cx, cy, radius) {
		discovered.Set(c.X, c.Y, true)
	}
}
